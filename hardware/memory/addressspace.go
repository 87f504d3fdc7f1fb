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
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/rvboard/rvboard/curated"
)

// AddressSpace is the system bus. Areas are kept in origin order.
type AddressSpace struct {
	areas []Area
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type.
func NewAddressSpace() *AddressSpace {
	return &AddressSpace{
		areas: make([]Area, 0),
	}
}

func end(a Area) uint64 {
	return a.Origin() + a.Size() - 1
}

// Map adds the area to the address space. The area must have a size, must
// not wrap around the top of the address space, must not share a label with
// a mapped area and must not overlap any mapped area.
func (as *AddressSpace) Map(a Area) error {
	if a == nil {
		return curated.Errorf(MapInvalid, "nil area")
	}
	if a.Size() == 0 {
		return curated.Errorf(MapInvalid, fmt.Sprintf("%s has no size", a.Label()))
	}
	if end(a) < a.Origin() {
		return curated.Errorf(MapInvalid, fmt.Sprintf("%s wraps the address space", a.Label()))
	}

	for _, m := range as.areas {
		if m.Label() == a.Label() {
			return curated.Errorf(MapDuplicate, a.Label())
		}
		if a.Origin() <= end(m) && m.Origin() <= end(a) {
			return curated.Errorf(MapOverlap, a.Label(), m.Label())
		}
	}

	as.areas = append(as.areas, a)
	sort.Slice(as.areas, func(i, j int) bool {
		return as.areas[i].Origin() < as.areas[j].Origin()
	})

	return nil
}

// Unmap removes the area with the label from the address space. Returns false
// if there is no such area.
func (as *AddressSpace) Unmap(label string) bool {
	for i, m := range as.areas {
		if m.Label() == label {
			as.areas = append(as.areas[:i], as.areas[i+1:]...)
			return true
		}
	}
	return false
}

// Areas returns the mapped areas in origin order.
func (as *AddressSpace) Areas() []Area {
	c := make([]Area, len(as.areas))
	copy(c, as.areas)
	return c
}

// Find returns the area with the label.
func (as *AddressSpace) Find(label string) (Area, bool) {
	for _, m := range as.areas {
		if m.Label() == label {
			return m, true
		}
	}
	return nil, false
}

// MapAddress returns the area containing the address and the offset of the
// address in that area.
func (as *AddressSpace) MapAddress(address uint64) (Area, uint64, error) {
	i := sort.Search(len(as.areas), func(i int) bool {
		return end(as.areas[i]) >= address
	})
	if i < len(as.areas) && as.areas[i].Origin() <= address {
		return as.areas[i], address - as.areas[i].Origin(), nil
	}
	return nil, 0, curated.Errorf(BusError, address)
}

// Read implements a bus read of one byte.
func (as *AddressSpace) Read(address uint64) (uint8, error) {
	a, o, err := as.MapAddress(address)
	if err != nil {
		return 0, err
	}
	return a.Read(o)
}

// Write implements a bus write of one byte.
func (as *AddressSpace) Write(address uint64, data uint8) error {
	a, o, err := as.MapAddress(address)
	if err != nil {
		return err
	}
	return a.Write(o, data)
}

// Peek returns the byte at the address without side effects.
func (as *AddressSpace) Peek(address uint64) (uint8, error) {
	a, o, err := as.MapAddress(address)
	if err != nil {
		return 0, err
	}
	return a.Peek(o)
}

// Poke sets the byte at the address without side effects. Poking a sealed
// area fails.
func (as *AddressSpace) Poke(address uint64, value uint8) error {
	a, o, err := as.MapAddress(address)
	if err != nil {
		return err
	}
	return a.Poke(o, value)
}

// ReadWord32 peeks at four bytes and returns them as a little-endian word.
func (as *AddressSpace) ReadWord32(address uint64) (uint32, error) {
	var b [4]uint8
	for i := range b {
		v, err := as.Peek(address + uint64(i))
		if err != nil {
			return 0, err
		}
		b[i] = v
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// Load pokes data into memory starting at address. The data must fit
// entirely inside one area.
func (as *AddressSpace) Load(address uint64, data []uint8) error {
	a, o, err := as.MapAddress(address)
	if err != nil {
		return err
	}
	if uint64(len(data)) > a.Size()-o {
		return curated.Errorf(OutOfRange, len(data), address, a.Label())
	}
	for i, v := range data {
		if err := a.Poke(o+uint64(i), v); err != nil {
			return err
		}
	}
	return nil
}

// Summary returns a printable list of the mapped areas.
func (as *AddressSpace) Summary() string {
	s := strings.Builder{}
	for _, a := range as.areas {
		access := "rw"
		if sl, ok := a.(Sealer); ok && sl.Sealed() {
			access = "ro"
		} else if _, ok := a.(*Unimplemented); ok {
			access = "--"
		}
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\t%s\n", a.Origin(), end(a), access, a.Label()))
	}
	return s.String()
}
