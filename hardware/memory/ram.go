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

import (
	"encoding/hex"

	"github.com/rvboard/rvboard/curated"
)

// MaxAllocation is the largest area that NewRAM() or NewROM() will allocate.
const MaxAllocation = 1 << 32

func allocate(label string, size uint64) ([]uint8, error) {
	if size == 0 {
		return nil, curated.Errorf(Allocation, label, "zero size")
	}
	if size > MaxAllocation {
		return nil, curated.Errorf(Allocation, label, "too large")
	}
	return make([]uint8, size), nil
}

// RAM is a readable and writable area of memory.
type RAM struct {
	AreaInfo
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, origin uint64, size uint64) (*RAM, error) {
	d, err := allocate(label, size)
	if err != nil {
		return nil, err
	}
	return &RAM{
		AreaInfo: NewAreaInfo(label, origin, size),
		data:     d,
	}, nil
}

func (ram *RAM) String() string {
	return hex.Dump(ram.data)
}

// Read implements the Area interface.
func (ram *RAM) Read(offset uint64) (uint8, error) {
	return ram.data[offset], nil
}

// Write implements the Area interface.
func (ram *RAM) Write(offset uint64, data uint8) error {
	ram.data[offset] = data
	return nil
}

// Peek implements the Area interface.
func (ram *RAM) Peek(offset uint64) (uint8, error) {
	return ram.Read(offset)
}

// Poke implements the Area interface.
func (ram *RAM) Poke(offset uint64, value uint8) error {
	return ram.Write(offset, value)
}

// Bytes returns the underlying data of the area. Changes to the returned
// slice are changes to RAM.
func (ram *RAM) Bytes() []uint8 {
	return ram.data
}
