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

package monitor_test

import (
	"testing"

	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/environment"
	"github.com/rvboard/rvboard/hardware"
	"github.com/rvboard/rvboard/hardware/serial"
	"github.com/rvboard/rvboard/monitor"
	"github.com/rvboard/rvboard/test"
)

func newMonitor(t *testing.T) (*monitor.Monitor, *hardware.Machine) {
	t.Helper()
	env := environment.NewEnvironment(nil)
	env.Quiet = true
	m, err := hardware.NewMachine(env, serial.NullBackend(), nil)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { m.Close() })
	return monitor.NewMonitor(m), m
}

func execute(t *testing.T, mon *monitor.Monitor, line string) (string, bool, error) {
	t.Helper()
	tw := &test.Writer{}
	quit, err := mon.Execute(line, tw)
	return tw.String(), quit, err
}

func TestEmptyAndQuit(t *testing.T) {
	mon, _ := newMonitor(t)

	out, quit, err := execute(t, mon, "   ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, out, "")

	_, quit, err = execute(t, mon, "QUIT")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, quit, true)
}

func TestUnknownCommand(t *testing.T) {
	mon, _ := newMonitor(t)
	_, _, err := execute(t, mon, "step")
	test.ExpectSuccess(t, curated.Is(err, monitor.UnknownCommand))
}

func TestMap(t *testing.T) {
	mon, _ := newMonitor(t)
	out, _, err := execute(t, mon, "map")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, `00000000 -> 00000fff	--	debug
00001000 -> 00002fff	ro	mrom
10000000 -> 100000ff	rw	uart
80000000 -> 805fffff	rw	ram
`)
}

func TestHartsAndReset(t *testing.T) {
	mon, m := newMonitor(t)

	out, _, err := execute(t, mon, "harts")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "hart 0: rv64 pc=0x00001004\n")

	m.Harts()[0].PC = 0x80000010
	out, _, err = execute(t, mon, "reset")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "1 hart(s) reset\n")
	test.ExpectEquality(t, m.Harts()[0].PC, uint64(0x1004))
}

func TestROM(t *testing.T) {
	mon, _ := newMonitor(t)
	out, _, err := execute(t, mon, "rom")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, `0x00001000: 00000000  unimp
0x00001004: 00800293  li t0,8
0x00001008: 01c29293  slli t0,t0,0x1c
0x0000100c: 00028067  jr t0
`)
}

func TestPeek(t *testing.T) {
	mon, _ := newMonitor(t)

	out, _, err := execute(t, mon, "peek 0x1004 4")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "00001004: 93 02 80 00\n")

	out, _, err = execute(t, mon, "peek 0x1000 18")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "00001000: 00 00 00 00 93 02 80 00 93 92 c2 01 67 80 02 00\n"+
		"00001010: 00 00\n")

	_, _, err = execute(t, mon, "peek")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArguments))

	_, _, err = execute(t, mon, "peek 0x1000 0")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArguments))

	// debug region is unimplemented
	_, _, err = execute(t, mon, "peek 0x0")
	test.ExpectFailure(t, err)
}

func TestPoke(t *testing.T) {
	mon, m := newMonitor(t)

	out, _, err := execute(t, mon, "poke 0x80000010 0x13")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "80000010: 13\n")
	test.ExpectEquality(t, m.RAM.Bytes()[0x10], uint8(0x13))

	_, _, err = execute(t, mon, "poke 0x1004 0")
	test.ExpectSuccess(t, curated.Is(err, monitor.NotRAM))

	_, _, err = execute(t, mon, "poke 0x80000000 256")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArguments))

	_, _, err = execute(t, mon, "poke 0x80600000 1")
	test.ExpectSuccess(t, curated.Is(err, monitor.NotRAM))
}

func TestLog(t *testing.T) {
	mon, _ := newMonitor(t)
	_, _, err := execute(t, mon, "log 2")
	test.ExpectSuccess(t, err)
	_, _, err = execute(t, mon, "log none")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArguments))
}

func TestSummary(t *testing.T) {
	mon, m := newMonitor(t)
	out, _, err := execute(t, mon, "summary")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, m.String())
}
