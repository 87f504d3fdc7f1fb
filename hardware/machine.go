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

package hardware

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/rvboard/rvboard/bootloader"
	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/environment"
	"github.com/rvboard/rvboard/hardware/harts"
	"github.com/rvboard/rvboard/hardware/memory"
	"github.com/rvboard/rvboard/hardware/memory/memorymap"
	"github.com/rvboard/rvboard/hardware/resetvec"
	"github.com/rvboard/rvboard/hardware/serial"
	"github.com/rvboard/rvboard/hardware/soc"
	"github.com/rvboard/rvboard/logger"
	"github.com/rvboard/rvboard/snapshot"
)

// Error patterns used by the hardware package.
const (
	ImageLoadFailure  = "machine: image load failure: %v"
	AllocationFailure = "machine: allocation failure: %v"
	MachineClosed     = "machine: machine has been closed"
)

// RAMLabel is the label of the RAM area in the address space.
const RAMLabel = "ram"

// ImageLoader is the interface to the boot image loader. The
// bootloader.Kernel type implements this interface.
type ImageLoader interface {
	// LoadImage places the image at path into memory. Flat images are placed
	// at dest. Returns the entry point of the image.
	LoadImage(path string, dest uint64, mem bootloader.Memory) (uint64, error)
}

// Machine is the complete board.
type Machine struct {
	env *environment.Environment

	// the system address space
	Mem *memory.AddressSpace

	SoC *soc.SoC
	RAM *memory.RAM

	// reset stub placed in the mask ROM
	Vector resetvec.Vector

	// entry point of the boot image. zero if no image was loaded
	Entry uint64

	// the image path and its sha1 hash, if an image was loaded. the hash is
	// only known when the loader is a *bootloader.Kernel
	Image     string
	ImageHash string

	closed bool
}

// NewMachine brings up the board described by the environment. The backend
// is bound to the UART for the lifetime of the machine. The loader is used
// only if the preferences name a boot image and may otherwise be nil.
//
// If the returned error is an ImageLoadFailure then the Machine is also
// returned and is valid. Any other error is returned with a nil Machine.
func NewMachine(env *environment.Environment, backend *serial.Backend, loader ImageLoader) (*Machine, error) {
	m := &Machine{
		env: env,
		Mem: memory.NewAddressSpace(),
	}

	plan, err := soc.Instantiate(env)
	if err != nil {
		return nil, err
	}

	m.SoC, err = soc.Realize(env, plan, m.Mem, backend)
	if err != nil {
		return nil, err
	}

	if err := m.mapRAM(); err != nil {
		m.Close()
		return nil, err
	}

	if err := m.placeResetVector(); err != nil {
		m.Close()
		return nil, err
	}

	logger.Logf(env, "machine", "%s: %d hart(s), reset stub jumps to %#x",
		env.Short(), len(m.Harts()), m.Vector.Target())

	if env.Prefs.Kernel != "" {
		if err := m.loadImage(loader, env.Prefs.Kernel); err != nil {
			logger.Log(env, "machine", err)
			return m, err
		}
	}

	return m, nil
}

func (m *Machine) mapRAM() error {
	r := memorymap.Lookup(memorymap.RAM)

	ram, err := memory.NewRAM(RAMLabel, r.Base, r.Size)
	if err != nil {
		return curated.Errorf(AllocationFailure, err)
	}
	if err := m.Mem.Map(ram); err != nil {
		return curated.Errorf(AllocationFailure, err)
	}
	m.RAM = ram

	return nil
}

func (m *Machine) placeResetVector() error {
	v, err := resetvec.Synthesize(memorymap.Lookup(memorymap.RAM).Base)
	if err != nil {
		return err
	}

	if err := m.Mem.Load(m.SoC.MaskROM.Origin(), v.Bytes()); err != nil {
		return curated.Errorf(AllocationFailure, err)
	}
	m.SoC.MaskROM.Seal()
	m.Vector = v

	return nil
}

func (m *Machine) loadImage(loader ImageLoader, path string) error {
	if loader == nil {
		return curated.Errorf(ImageLoadFailure, "no image loader")
	}

	entry, err := loader.LoadImage(path, m.RAM.Origin(), m.RAM)
	if err != nil {
		return curated.Errorf(ImageLoadFailure, err)
	}

	m.Entry = entry
	m.Image = path
	if k, ok := loader.(*bootloader.Kernel); ok {
		m.ImageHash = k.Last.Hash
	}
	logger.Logf(m.env, "machine", "loaded %s (entry %#x)", path, entry)
	if entry != m.RAM.Origin() {
		logger.Logf(m.env, "machine", "image entry %#x is not the start of RAM", entry)
	}

	return nil
}

// Environment returns the environment the machine was created with.
func (m *Machine) Environment() *environment.Environment {
	return m.env
}

// Harts returns the harts of the board.
func (m *Machine) Harts() []*harts.Hart {
	if m.SoC == nil {
		return nil
	}
	return m.SoC.Harts.Harts()
}

// Reset every hart to the shared reset vector.
func (m *Machine) Reset() error {
	if m.closed {
		return curated.Errorf(MachineClosed)
	}
	return m.SoC.Harts.Reset()
}

// Closed returns true if Close() has been called.
func (m *Machine) Closed() bool {
	return m.closed
}

// Close tears down the machine and releases the serial backend. The backend
// itself is not closed.
func (m *Machine) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	if m.RAM != nil {
		m.Mem.Unmap(m.RAM.Label())
		m.RAM = nil
	}

	if m.SoC != nil {
		return m.SoC.Close()
	}

	return nil
}

// Snapshot returns the current state of the machine.
func (m *Machine) Snapshot() (snapshot.State, error) {
	if m.closed {
		return snapshot.State{}, curated.Errorf(MachineClosed)
	}

	s := snapshot.State{
		Label:       string(m.env.Label),
		CPUType:     m.SoC.Harts.Config().CPUType,
		ResetVector: m.Vector.Bytes(),
		RAMDigest:   fmt.Sprintf("%x", blake2b.Sum256(m.RAM.Bytes())),
		Image:       m.Image,
		ImageHash:   m.ImageHash,
	}

	for _, h := range m.Harts() {
		s.Harts = append(s.Harts, snapshot.Hart{
			ID:       h.ID,
			XLEN:     h.XLEN,
			PC:       h.PC,
			ResetVec: h.ResetVec,
		})
	}

	for _, a := range m.Mem.Areas() {
		ro := false
		if sl, ok := a.(memory.Sealer); ok {
			ro = sl.Sealed()
		}
		s.Regions = append(s.Regions, snapshot.Region{
			Label:    a.Label(),
			Base:     a.Origin(),
			Size:     a.Size(),
			ReadOnly: ro,
		})
	}

	return s, nil
}

func (m *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("rvboard %s\n", m.env.Short()))
	if m.closed {
		s.WriteString("closed\n")
		return s.String()
	}
	s.WriteString(m.Mem.Summary())
	s.WriteString(m.SoC.Harts.String())
	if m.Image != "" {
		s.WriteString(fmt.Sprintf("image: %s (entry %#x)\n", m.Image, m.Entry))
	}
	return s.String()
}
