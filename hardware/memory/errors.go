// This file is part of rvboard.
//
// rvboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rvboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rvboard.  If not, see <https://www.gnu.org/licenses/>.

package memory

// Error patterns used by the memory package.
const (
	MapInvalid          = "memory: invalid area: %v"
	MapOverlap          = "memory: %s overlaps %s"
	MapDuplicate        = "memory: an area labelled %s is already mapped"
	BusError            = "memory: bus error at 0x%08x"
	ReadOnly            = "memory: %s is read only"
	UnimplementedAccess = "memory: unimplemented access at 0x%08x in %s"
	OutOfRange          = "memory: %d bytes at 0x%08x do not fit in %s"
	Allocation          = "memory: cannot allocate %s: %v"
)
