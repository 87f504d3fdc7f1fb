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

// ROM is read only memory. The contents can be set with Poke() or Load()
// until Seal() is called.
type ROM struct {
	AreaInfo
	data   []uint8
	sealed bool
}

// NewROM is the preferred method of initialisation for the ROM type.
func NewROM(label string, origin uint64, size uint64) (*ROM, error) {
	d, err := allocate(label, size)
	if err != nil {
		return nil, err
	}
	return &ROM{
		AreaInfo: NewAreaInfo(label, origin, size),
		data:     d,
	}, nil
}

func (rom *ROM) String() string {
	return hex.Dump(rom.data)
}

// Read implements the Area interface.
func (rom *ROM) Read(offset uint64) (uint8, error) {
	return rom.data[offset], nil
}

// Write implements the Area interface. Writes to ROM over the bus always fail.
func (rom *ROM) Write(_ uint64, _ uint8) error {
	return curated.Errorf(ReadOnly, rom.Label())
}

// Peek implements the Area interface.
func (rom *ROM) Peek(offset uint64) (uint8, error) {
	return rom.data[offset], nil
}

// Poke implements the Area interface. Fails once the ROM has been sealed.
func (rom *ROM) Poke(offset uint64, value uint8) error {
	if rom.sealed {
		return curated.Errorf(ReadOnly, rom.Label())
	}
	rom.data[offset] = value
	return nil
}

// Seal implements the Sealer interface.
func (rom *ROM) Seal() {
	rom.sealed = true
}

// Sealed implements the Sealer interface.
func (rom *ROM) Sealed() bool {
	return rom.sealed
}

// Bytes returns a copy of the ROM contents.
func (rom *ROM) Bytes() []uint8 {
	c := make([]uint8, len(rom.data))
	copy(c, rom.data)
	return c
}
