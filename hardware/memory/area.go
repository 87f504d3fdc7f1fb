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

// Area is implemented by anything that can be mapped into the AddressSpace.
// Address arguments are offsets from the origin of the area.
type Area interface {
	Label() string
	Origin() uint64
	Size() uint64

	Read(offset uint64) (uint8, error)
	Write(offset uint64, data uint8) error

	Peek(offset uint64) (uint8, error)
	Poke(offset uint64, value uint8) error
}

// Sealer is implemented by areas that can be made read only.
type Sealer interface {
	Seal()
	Sealed() bool
}

// AreaInfo is embedded by areas to provide the address information part of
// the Area interface.
type AreaInfo struct {
	label  string
	origin uint64
	size   uint64
}

// NewAreaInfo returns a new AreaInfo.
func NewAreaInfo(label string, origin uint64, size uint64) AreaInfo {
	return AreaInfo{
		label:  label,
		origin: origin,
		size:   size,
	}
}

// Label implements the Area interface.
func (a AreaInfo) Label() string {
	return a.label
}

// Origin implements the Area interface.
func (a AreaInfo) Origin() uint64 {
	return a.origin
}

// Size implements the Area interface.
func (a AreaInfo) Size() uint64 {
	return a.size
}
