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

import "github.com/rvboard/rvboard/curated"

// Unimplemented reserves address space for a device that is not emulated.
// Every access to the area fails.
type Unimplemented struct {
	AreaInfo
}

// NewUnimplemented is the preferred method of initialisation for the
// Unimplemented type.
func NewUnimplemented(label string, origin uint64, size uint64) *Unimplemented {
	return &Unimplemented{
		AreaInfo: NewAreaInfo(label, origin, size),
	}
}

func (u *Unimplemented) fail(offset uint64) error {
	return curated.Errorf(UnimplementedAccess, u.Origin()+offset, u.Label())
}

// Read implements the Area interface.
func (u *Unimplemented) Read(offset uint64) (uint8, error) {
	return 0, u.fail(offset)
}

// Write implements the Area interface.
func (u *Unimplemented) Write(offset uint64, _ uint8) error {
	return u.fail(offset)
}

// Peek implements the Area interface.
func (u *Unimplemented) Peek(offset uint64) (uint8, error) {
	return 0, u.fail(offset)
}

// Poke implements the Area interface.
func (u *Unimplemented) Poke(offset uint64, _ uint8) error {
	return u.fail(offset)
}
