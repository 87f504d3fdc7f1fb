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

// Package memorymap is the fixed memory map of the board. Every device that
// occupies physical address space has a DeviceID and a Region in the table.
//
//	r := memorymap.Lookup(memorymap.RAM)
//	fmt.Printf("%#x %#x", r.Base, r.Size)
//
// The table is defined once and is never changed at runtime. Regions do not
// overlap, which can be checked with the Validate() function.
//
// The Summary() function produces a printable list of the table in address
// order.
package memorymap
