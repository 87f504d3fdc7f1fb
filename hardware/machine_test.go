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

package hardware_test

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/blake2b"

	"github.com/rvboard/rvboard/bootloader"
	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/environment"
	"github.com/rvboard/rvboard/hardware"
	"github.com/rvboard/rvboard/hardware/preferences"
	"github.com/rvboard/rvboard/hardware/serial"
	"github.com/rvboard/rvboard/hardware/soc"
	"github.com/rvboard/rvboard/test"
)

func newEnv(numHarts int, kernel string) *environment.Environment {
	env := environment.NewEnvironment(nil)
	env.Prefs.NumHarts = numHarts
	env.Prefs.Kernel = kernel
	env.Quiet = true
	return env
}

// records the arguments of every call and optionally fails
type mockLoader struct {
	path  string
	dest  uint64
	calls int
	err   error
}

func (ld *mockLoader) LoadImage(path string, dest uint64, mem bootloader.Memory) (uint64, error) {
	ld.calls++
	ld.path = path
	ld.dest = dest
	if ld.err != nil {
		return 0, ld.err
	}
	return dest, mem.Poke(0, 0x13)
}

func TestBringUp(t *testing.T) {
	m, err := hardware.NewMachine(newEnv(1, ""), serial.NullBackend(), nil)
	test.DemandSuccess(t, err)
	defer m.Close()

	test.DemandEquality(t, len(m.Harts()), 1)
	test.ExpectEquality(t, m.Harts()[0].PC, uint64(0x1004))

	expected := []uint32{0x00000000, 0x00800293, 0x01c29293, 0x00028067}
	for i, w := range expected {
		v, err := m.Mem.ReadWord32(0x1000 + uint64(i*4))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, w, i)
	}

	// reset stub is sealed
	test.ExpectFailure(t, m.Mem.Poke(0x1000, 0xff))

	// RAM is untouched when there is no image
	for _, v := range m.RAM.Bytes()[:64] {
		if v != 0 {
			t.Fatalf("RAM not zeroed")
		}
	}
	test.ExpectEquality(t, m.Entry, uint64(0))

	test.ExpectEquality(t, m.Mem.Summary(), `00000000 -> 00000fff	--	debug
00001000 -> 00002fff	ro	mrom
10000000 -> 100000ff	rw	uart
80000000 -> 805fffff	rw	ram
`)
}

func TestHartCounts(t *testing.T) {
	for n := 1; n <= 2; n++ {
		m, err := hardware.NewMachine(newEnv(n, ""), serial.NullBackend(), nil)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, len(m.Harts()), n)
		for _, h := range m.Harts() {
			test.ExpectEquality(t, h.PC, soc.ResetAddress, n)
		}
		test.ExpectSuccess(t, m.Close())
	}

	be := serial.NullBackend()
	m, err := hardware.NewMachine(newEnv(3, ""), be, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, m == nil)
	test.ExpectSuccess(t, curated.Is(err, soc.ConfigurationError))
	test.ExpectEquality(t, be.Owner(), "")
}

func TestImageLoad(t *testing.T) {
	ld := &mockLoader{}
	m, err := hardware.NewMachine(newEnv(1, "kernel.bin"), serial.NullBackend(), ld)
	test.DemandSuccess(t, err)
	defer m.Close()

	test.ExpectEquality(t, ld.calls, 1)
	test.ExpectEquality(t, ld.path, "kernel.bin")
	test.ExpectEquality(t, ld.dest, uint64(0x80000000))
	test.ExpectEquality(t, m.Entry, uint64(0x80000000))
	test.ExpectEquality(t, m.Image, "kernel.bin")

	v, err := m.Mem.Peek(0x80000000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x13))
}

func TestImageLoadFailure(t *testing.T) {
	ld := &mockLoader{err: errors.New("no such file")}
	m, err := hardware.NewMachine(newEnv(2, "missing.bin"), serial.NullBackend(), ld)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.ImageLoadFailure))

	// the machine is still usable
	test.DemandSuccess(t, m != nil)
	defer m.Close()
	test.ExpectEquality(t, len(m.Harts()), 2)
	test.ExpectEquality(t, m.Image, "")
	v, err := m.Mem.ReadWord32(0x100c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00028067))
	test.ExpectSuccess(t, m.Reset())

	// no loader at all
	m2, err := hardware.NewMachine(newEnv(1, "kernel.bin"), serial.NullBackend(), nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.ImageLoadFailure))
	test.DemandSuccess(t, m2 != nil)
	test.ExpectSuccess(t, m2.Close())
}

func TestKernelLoader(t *testing.T) {
	data := []byte{0x13, 0x00, 0x00, 0x00, 0x6f, 0x00, 0x00, 0x00}
	fn := filepath.Join(t.TempDir(), "flat.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	k := &bootloader.Kernel{}
	m, err := hardware.NewMachine(newEnv(1, fn), serial.NullBackend(), k)
	test.DemandSuccess(t, err)
	defer m.Close()

	test.ExpectEquality(t, m.ImageHash, fmt.Sprintf("%x", sha1.Sum(data)))
	w, err := m.Mem.ReadWord32(0x80000004)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x0000006f))
}

func TestSharedBackend(t *testing.T) {
	be := serial.NullBackend()

	m1, err := hardware.NewMachine(newEnv(1, ""), be, nil)
	test.DemandSuccess(t, err)

	m2, err := hardware.NewMachine(newEnv(1, ""), be, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, m2 == nil)
	test.ExpectSuccess(t, curated.Is(err, soc.ResourceConflict))

	// first machine is unaffected
	test.ExpectEquality(t, be.Owner(), m1.SoC.Owner())
	test.ExpectSuccess(t, m1.Reset())

	// the backend can be claimed again once the first machine is closed
	test.ExpectSuccess(t, m1.Close())
	test.ExpectEquality(t, be.Owner(), "")
	test.ExpectSuccess(t, curated.Is(m1.Reset(), hardware.MachineClosed))

	m3, err := hardware.NewMachine(newEnv(1, ""), be, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, m3.Close())

	// closing twice is harmless
	test.ExpectSuccess(t, m3.Close())
}

func TestSnapshot(t *testing.T) {
	ld := &mockLoader{}
	m, err := hardware.NewMachine(newEnv(2, "kernel.bin"), serial.NullBackend(), ld)
	test.DemandSuccess(t, err)

	s, err := m.Snapshot()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Label, string(m.Environment().Label))
	test.ExpectEquality(t, s.CPUType, "any")
	test.ExpectEquality(t, len(s.Harts), 2)
	test.ExpectEquality(t, len(s.Regions), 4)
	test.ExpectEquality(t, s.Regions[1].Label, "mrom")
	test.ExpectSuccess(t, s.Regions[1].ReadOnly)
	test.ExpectEquality(t, s.RAMDigest, fmt.Sprintf("%x", blake2b.Sum256(m.RAM.Bytes())))
	test.ExpectEquality(t, len(s.ResetVector), 16)
	test.ExpectEquality(t, s.Image, "kernel.bin")

	test.ExpectSuccess(t, m.Close())
	_, err = m.Snapshot()
	test.ExpectSuccess(t, curated.Is(err, hardware.MachineClosed))
}

func TestSharedBackendUnlabelled(t *testing.T) {
	be := serial.NullBackend()

	// environments created without NewEnvironment() have an empty label
	env1 := &environment.Environment{Prefs: preferences.NewPreferences(), Quiet: true}
	env2 := &environment.Environment{Prefs: preferences.NewPreferences(), Quiet: true}

	m1, err := hardware.NewMachine(env1, be, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, be.Claimed())

	m2, err := hardware.NewMachine(env2, be, nil)
	test.ExpectSuccess(t, curated.Is(err, soc.ResourceConflict))
	test.ExpectSuccess(t, m2 == nil)

	test.ExpectSuccess(t, m1.Close())
	test.ExpectFailure(t, be.Claimed())

	m3, err := hardware.NewMachine(env2, be, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, m3.Close())
}
