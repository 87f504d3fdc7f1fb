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

package memory_test

import (
	"testing"

	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/hardware/memory"
	"github.com/rvboard/rvboard/test"
)

func readData(t *testing.T, as *memory.AddressSpace, address uint64, expectedData uint8) {
	t.Helper()
	d, err := as.Read(address)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d, expectedData)
}

func TestMapping(t *testing.T) {
	as := memory.NewAddressSpace()

	rom, err := memory.NewROM("rom", 0x1000, 0x2000)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, as.Map(rom))

	ram, err := memory.NewRAM("ram", 0x80000000, 0x1000)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, as.Map(ram))

	// overlapping from below and from above
	a, _ := memory.NewRAM("a", 0x0800, 0x0801)
	test.ExpectSuccess(t, curated.Is(as.Map(a), memory.MapOverlap))
	b, _ := memory.NewRAM("b", 0x2fff, 0x10)
	test.ExpectSuccess(t, curated.Is(as.Map(b), memory.MapOverlap))

	// adjacent is fine
	c, _ := memory.NewRAM("c", 0x3000, 0x10)
	test.ExpectSuccess(t, as.Map(c))

	// duplicate label
	d, _ := memory.NewRAM("c", 0x4000, 0x10)
	test.ExpectSuccess(t, curated.Is(as.Map(d), memory.MapDuplicate))

	test.ExpectSuccess(t, curated.Is(as.Map(nil), memory.MapInvalid))

	test.ExpectSuccess(t, as.Unmap("c"))
	test.ExpectFailure(t, as.Unmap("c"))
	test.ExpectEquality(t, len(as.Areas()), 2)
}

func TestAllocation(t *testing.T) {
	_, err := memory.NewRAM("zero", 0, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.Allocation))
	_, err = memory.NewROM("huge", 0, memory.MaxAllocation+1)
	test.ExpectSuccess(t, curated.Is(err, memory.Allocation))
}

func TestBus(t *testing.T) {
	as := memory.NewAddressSpace()
	ram, _ := memory.NewRAM("ram", 0x80000000, 0x100)
	test.DemandSuccess(t, as.Map(ram))

	test.ExpectSuccess(t, as.Write(0x80000010, 0xaa))
	readData(t, as, 0x80000010, 0xaa)

	_, err := as.Read(0x80000100)
	test.ExpectSuccess(t, curated.Is(err, memory.BusError))
	test.ExpectSuccess(t, curated.Is(as.Write(0x7fffffff, 0), memory.BusError))
}

func TestROM(t *testing.T) {
	as := memory.NewAddressSpace()
	rom, _ := memory.NewROM("rom", 0x1000, 0x2000)
	test.DemandSuccess(t, as.Map(rom))

	test.ExpectSuccess(t, as.Load(0x1000, []uint8{0x93, 0x02, 0x80, 0x00}))
	w, err := as.ReadWord32(0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x00800293))

	// writes over the bus always fail
	test.ExpectSuccess(t, curated.Is(as.Write(0x1000, 0), memory.ReadOnly))

	// pokes fail once sealed
	test.ExpectSuccess(t, as.Poke(0x1004, 0x01))
	rom.Seal()
	test.ExpectSuccess(t, curated.Is(as.Poke(0x1004, 0x02), memory.ReadOnly))
	readData(t, as, 0x1004, 0x01)

	// loads must fit in the area
	big := make([]uint8, 0x11)
	test.ExpectSuccess(t, curated.Is(as.Load(0x2ff0, big), memory.OutOfRange))
}

func TestUnimplemented(t *testing.T) {
	as := memory.NewAddressSpace()
	test.DemandSuccess(t, as.Map(memory.NewUnimplemented("debug", 0x0, 0x1000)))

	_, err := as.Read(0x10)
	test.ExpectSuccess(t, curated.Is(err, memory.UnimplementedAccess))
	test.ExpectSuccess(t, curated.Is(as.Poke(0x10, 0), memory.UnimplementedAccess))
}

func TestSummary(t *testing.T) {
	as := memory.NewAddressSpace()
	ram, _ := memory.NewRAM("ram", 0x80000000, 0x600000)
	rom, _ := memory.NewROM("mrom", 0x1000, 0x2000)
	rom.Seal()
	test.DemandSuccess(t, as.Map(ram))
	test.DemandSuccess(t, as.Map(rom))
	test.DemandSuccess(t, as.Map(memory.NewUnimplemented("debug", 0x0, 0x1000)))

	test.ExpectEquality(t, as.Summary(), `00000000 -> 00000fff	--	debug
00001000 -> 00002fff	ro	mrom
80000000 -> 805fffff	rw	ram
`)
}
