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

package soc

import (
	"fmt"

	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/environment"
	"github.com/rvboard/rvboard/hardware/harts"
	"github.com/rvboard/rvboard/hardware/memory"
	"github.com/rvboard/rvboard/hardware/memory/memorymap"
	"github.com/rvboard/rvboard/hardware/preferences"
	"github.com/rvboard/rvboard/hardware/resetvec"
	"github.com/rvboard/rvboard/hardware/serial"
	"github.com/rvboard/rvboard/logger"
)

// Error patterns used by the soc package.
const (
	ConfigurationError = "soc: configuration error: %v"
	ResourceConflict   = "soc: resource conflict: %v"
	AllocationFailure  = "soc: allocation failure: %v"
)

// Labels of the areas mapped by the SoC.
const (
	MaskROMLabel = "mrom"
	DebugLabel   = "debug"
	UARTLabel    = "uart"
)

// ResetAddress is the address every hart starts from: the first instruction
// of the reset stub after the placeholder word.
var ResetAddress = memorymap.Lookup(memorymap.MaskROM).Base + resetvec.EntryOffset

// Plan is the result of the instantiate phase.
type Plan struct {
	// the hart array configuration. the CPUType field is left empty and is
	// filled in by Realize()
	Harts harts.Config
}

// Instantiate creates the Plan for the SoC from the preferences in the
// environment.
func Instantiate(env *environment.Environment) (Plan, error) {
	if env == nil || env.Prefs == nil {
		return Plan{}, curated.Errorf(ConfigurationError, "no environment")
	}

	n := env.Prefs.NumHarts
	if n > preferences.MaxHarts {
		return Plan{}, curated.Errorf(ConfigurationError,
			fmt.Sprintf("%d harts requested, board maximum is %d", n, preferences.MaxHarts))
	}

	return Plan{
		Harts: harts.Config{
			NumHarts: n,
			ResetVec: ResetAddress,
		},
	}, nil
}

// SoC is a realized system-on-chip.
type SoC struct {
	owner string
	sys   *memory.AddressSpace

	Harts   *harts.Array
	MaskROM *memory.ROM
	Debug   *memory.Unimplemented
	UART    *serial.Device
}

// Realize creates the components described by the plan and maps them into the
// address space. The hart type is taken from the environment at this point.
//
// The backend is claimed for the lifetime of the SoC and is released by
// Close().
func Realize(env *environment.Environment, plan Plan, sys *memory.AddressSpace, backend *serial.Backend) (*SoC, error) {
	if env == nil || env.Prefs == nil {
		return nil, curated.Errorf(ConfigurationError, "no environment")
	}
	if sys == nil {
		return nil, curated.Errorf(ConfigurationError, "no address space")
	}
	if backend == nil {
		return nil, curated.Errorf(ConfigurationError, "no serial backend")
	}

	s := &SoC{
		owner: string(env.Label),
		sys:   sys,
	}

	s.Harts = harts.NewArray(plan.Harts)
	s.Harts.SetCPUType(env.Prefs.CPUType)
	if err := s.Harts.Realize(); err != nil {
		return nil, curated.Errorf(ConfigurationError, err)
	}

	if err := s.realizeMemory(); err != nil {
		s.Close()
		logger.Logf(env, "soc", "realize abandoned: %v", err)
		return nil, err
	}

	if err := s.realizeSerial(backend); err != nil {
		s.Close()
		logger.Logf(env, "soc", "realize abandoned: %v", err)
		return nil, err
	}

	logger.Logf(env, "soc", "realized %d hart(s) of type %s with reset vector %#x",
		len(s.Harts.Harts()), s.Harts.Config().CPUType, plan.Harts.ResetVec)

	return s, nil
}

func (s *SoC) realizeMemory() error {
	r := memorymap.Lookup(memorymap.MaskROM)

	rom, err := memory.NewROM(MaskROMLabel, r.Base, r.Size)
	if err != nil {
		return curated.Errorf(AllocationFailure, err)
	}
	if err := s.sys.Map(rom); err != nil {
		return curated.Errorf(AllocationFailure, err)
	}
	s.MaskROM = rom

	r = memorymap.Lookup(memorymap.Debug)
	dbg := memory.NewUnimplemented(DebugLabel, r.Base, r.Size)
	if err := s.sys.Map(dbg); err != nil {
		return curated.Errorf(AllocationFailure, err)
	}
	s.Debug = dbg

	return nil
}

func (s *SoC) realizeSerial(backend *serial.Backend) error {
	r := memorymap.Lookup(memorymap.UART)

	uart, err := serial.NewDevice(s.owner, r.Base, r.Size, serial.Clock, backend)
	if err != nil {
		if curated.Is(err, serial.AlreadyClaimed) {
			return curated.Errorf(ResourceConflict, err)
		}
		return curated.Errorf(ConfigurationError, err)
	}

	if err := s.sys.Map(uart); err != nil {
		_ = uart.Close()
		return curated.Errorf(AllocationFailure, err)
	}
	s.UART = uart

	return nil
}

// Owner returns the name used to claim exclusive resources.
func (s *SoC) Owner() string {
	return s.owner
}

// Close unmaps the SoC from the address space and releases the serial
// backend. It is safe to call Close() more than once.
func (s *SoC) Close() error {
	var err error

	if s.UART != nil {
		s.sys.Unmap(s.UART.Label())
		err = s.UART.Close()
		s.UART = nil
	}
	if s.Debug != nil {
		s.sys.Unmap(s.Debug.Label())
		s.Debug = nil
	}
	if s.MaskROM != nil {
		s.sys.Unmap(s.MaskROM.Label())
		s.MaskROM = nil
	}

	return err
}
