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

package memorymap

import (
	"fmt"
	"strings"

	"github.com/rvboard/rvboard/curated"
)

// DeviceID identifies an entry in the memory map. The order of the constants
// is the order of the table.
type DeviceID int

// List of valid DeviceID values.
const (
	Debug DeviceID = iota
	MaskROM
	UART
	RAM

	numDevices
)

func (id DeviceID) String() string {
	switch id {
	case Debug:
		return "DEBUG"
	case MaskROM:
		return "MROM"
	case UART:
		return "UART"
	case RAM:
		return "RAM"
	}
	return "undefined"
}

// Region is the physical address range of a device.
type Region struct {
	Base uint64
	Size uint64
}

// End returns the last address in the region. Undefined for a zero sized
// region.
func (r Region) End() uint64 {
	return r.Base + r.Size - 1
}

// Contains returns true if address is in the region.
func (r Region) Contains(address uint64) bool {
	return address >= r.Base && address-r.Base < r.Size
}

// Overlaps returns true if any address is in both regions.
func (r Region) Overlaps(o Region) bool {
	if r.Size == 0 || o.Size == 0 {
		return false
	}
	return r.Base <= o.End() && o.Base <= r.End()
}

func (r Region) String() string {
	return fmt.Sprintf("%08x -> %08x", r.Base, r.End())
}

var table = [numDevices]Region{
	Debug:   {Base: 0x00000000, Size: 0x1000},
	MaskROM: {Base: 0x00001000, Size: 0x2000},
	UART:    {Base: 0x10000000, Size: 0x100},
	RAM:     {Base: 0x80000000, Size: 0x600000},
}

// Lookup returns the region for the DeviceID. An id that is not one of the
// DeviceID constants is a programming error and will cause a panic.
func Lookup(id DeviceID) Region {
	if id < 0 || id >= numDevices {
		panic(fmt.Sprintf("memorymap: no region for device id %d", id))
	}
	return table[id]
}

// Entry pairs a DeviceID with its Region.
type Entry struct {
	ID DeviceID
	Region
}

// All returns every entry in the table in DeviceID order.
func All() []Entry {
	e := make([]Entry, numDevices)
	for i := range table {
		e[i] = Entry{ID: DeviceID(i), Region: table[i]}
	}
	return e
}

// Overlap is the error pattern returned by Validate().
const Overlap = "memorymap: %v overlaps %v"

// EmptyRegion is returned by Validate() for a region with no size.
const EmptyRegion = "memorymap: %v has no size"

// Validate checks that no two regions in the table overlap and that every
// region has a size.
func Validate() error {
	return validate(All())
}

func validate(entries []Entry) error {
	for i, a := range entries {
		if a.Size == 0 {
			return curated.Errorf(EmptyRegion, a.ID)
		}
		for _, b := range entries[i+1:] {
			if a.Overlaps(b.Region) {
				return curated.Errorf(Overlap, a.ID, b.ID)
			}
		}
	}
	return nil
}

// Summary returns a list of every region in the table, one per line.
func Summary() string {
	s := strings.Builder{}
	for _, e := range All() {
		s.WriteString(fmt.Sprintf("%s\t%s\n", e.Region, e.ID))
	}
	return s.String()
}
