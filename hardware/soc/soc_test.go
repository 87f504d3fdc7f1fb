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

package soc_test

import (
	"testing"

	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/environment"
	"github.com/rvboard/rvboard/hardware/memory"
	"github.com/rvboard/rvboard/hardware/serial"
	"github.com/rvboard/rvboard/hardware/soc"
	"github.com/rvboard/rvboard/test"
)

func newEnv(numHarts int, cpuType string) *environment.Environment {
	env := environment.NewEnvironment(nil)
	env.Prefs.NumHarts = numHarts
	env.Prefs.CPUType = cpuType
	env.Quiet = true
	return env
}

func realize(t *testing.T, env *environment.Environment, sys *memory.AddressSpace, be *serial.Backend) (*soc.SoC, error) {
	t.Helper()
	plan, err := soc.Instantiate(env)
	if err != nil {
		return nil, err
	}
	return soc.Realize(env, plan, sys, be)
}

func TestResetAddress(t *testing.T) {
	test.ExpectEquality(t, soc.ResetAddress, uint64(0x1004))
}

func TestHartCounts(t *testing.T) {
	for n := 1; n <= 2; n++ {
		sys := memory.NewAddressSpace()
		s, err := realize(t, newEnv(n, "any"), sys, serial.NullBackend())
		test.DemandSuccess(t, err)

		test.DemandEquality(t, len(s.Harts.Harts()), n)
		for _, h := range s.Harts.Harts() {
			test.ExpectEquality(t, h.PC, uint64(0x1004), n)
			test.ExpectEquality(t, h.ResetVec, uint64(0x1004), n)
		}
		test.ExpectSuccess(t, s.Close())
	}
}

func TestConfigurationErrors(t *testing.T) {
	sys := memory.NewAddressSpace()
	be := serial.NullBackend()

	_, err := realize(t, newEnv(3, "any"), sys, be)
	test.ExpectSuccess(t, curated.Is(err, soc.ConfigurationError))

	_, err = realize(t, newEnv(0, "any"), sys, be)
	test.ExpectSuccess(t, curated.Is(err, soc.ConfigurationError))

	_, err = realize(t, newEnv(1, "6502"), sys, be)
	test.ExpectSuccess(t, curated.Is(err, soc.ConfigurationError))

	_, err = realize(t, newEnv(1, "any"), sys, nil)
	test.ExpectSuccess(t, curated.Is(err, soc.ConfigurationError))

	// nothing is left behind by the failed attempts
	test.ExpectEquality(t, len(sys.Areas()), 0)
	test.ExpectEquality(t, be.Owner(), "")
}

func TestMapping(t *testing.T) {
	sys := memory.NewAddressSpace()
	env := newEnv(1, "any")
	s, err := realize(t, env, sys, serial.NullBackend())
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, sys.Summary(), `00000000 -> 00000fff	--	debug
00001000 -> 00002fff	rw	mrom
10000000 -> 100000ff	rw	uart
`)
	test.ExpectEquality(t, s.UART.Clock(), uint32(399193))
	test.ExpectEquality(t, s.Owner(), string(env.Label))

	test.ExpectSuccess(t, s.Close())
	test.ExpectEquality(t, len(sys.Areas()), 0)

	// close is idempotent
	test.ExpectSuccess(t, s.Close())
}

func TestAllocationFailure(t *testing.T) {
	sys := memory.NewAddressSpace()

	// something already occupies the mask ROM region
	blocker, _ := memory.NewRAM("blocker", 0x2000, 0x10)
	test.DemandSuccess(t, sys.Map(blocker))

	be := serial.NullBackend()
	_, err := realize(t, newEnv(1, "any"), sys, be)
	test.ExpectSuccess(t, curated.Is(err, soc.AllocationFailure))
	test.ExpectEquality(t, len(sys.Areas()), 1)
	test.ExpectEquality(t, be.Owner(), "")
}

func TestUARTAllocationFailure(t *testing.T) {
	sys := memory.NewAddressSpace()

	blocker, _ := memory.NewRAM("blocker", 0x10000080, 0x10)
	test.DemandSuccess(t, sys.Map(blocker))

	be := serial.NullBackend()
	_, err := realize(t, newEnv(1, "any"), sys, be)
	test.ExpectSuccess(t, curated.Is(err, soc.AllocationFailure))

	// the mask ROM and debug areas were unmapped and the claim released
	test.ExpectEquality(t, len(sys.Areas()), 1)
	test.ExpectEquality(t, be.Owner(), "")
}

func TestResourceConflict(t *testing.T) {
	be, buf := serial.BufferBackend("shared")

	sysA := memory.NewAddressSpace()
	envA := newEnv(1, "any")
	a, err := realize(t, envA, sysA, be)
	test.DemandSuccess(t, err)

	sysB := memory.NewAddressSpace()
	_, err = realize(t, newEnv(2, "any"), sysB, be)
	test.ExpectSuccess(t, curated.Is(err, soc.ResourceConflict))
	test.ExpectSuccess(t, curated.Has(err, serial.AlreadyClaimed))
	test.ExpectEquality(t, len(sysB.Areas()), 0)

	// the first SoC still owns the backend and can still transmit
	test.ExpectEquality(t, be.Owner(), string(envA.Label))
	test.ExpectSuccess(t, sysA.Write(0x10000000, 'A'))
	test.ExpectEquality(t, buf.String(), "A")
	test.ExpectEquality(t, len(a.Harts.Harts()), 1)

	// once the first SoC is closed the backend can be claimed again
	test.ExpectSuccess(t, a.Close())
	b, err := realize(t, newEnv(2, "any"), sysB, be)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, b.Close())
}
