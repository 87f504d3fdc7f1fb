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

package harts

import (
	"fmt"
	"strings"

	"github.com/rvboard/rvboard/curated"
)

// Error patterns used by the harts package.
const (
	InvalidCount    = "harts: invalid number of harts (%d)"
	UnknownCPUType  = "harts: unknown cpu type (%s)"
	AlreadyRealized = "harts: array already realized"
	NotRealized     = "harts: array not realized"
)

// Config is the configuration of a hart array.
type Config struct {
	NumHarts int
	CPUType  string
	ResetVec uint64
}

// Hart is a single processor core.
type Hart struct {
	ID   int
	XLEN int

	// the address the hart starts from after reset
	ResetVec uint64

	// program counter
	PC uint64
}

// Reset sets the program counter to the reset vector.
func (h *Hart) Reset() {
	h.PC = h.ResetVec
}

func (h *Hart) String() string {
	return fmt.Sprintf("hart %d: rv%d pc=0x%08x", h.ID, h.XLEN, h.PC)
}

// Array is a collection of harts sharing one configuration.
type Array struct {
	cfg   Config
	harts []*Hart
}

// NewArray is the preferred method of initialisation for the Array type. The
// array has no harts until Realize() is called.
func NewArray(cfg Config) *Array {
	return &Array{cfg: cfg}
}

// Config returns the current configuration of the array.
func (a *Array) Config() Config {
	return a.cfg
}

// SetCPUType changes the hart type. Has no effect on a realized array.
func (a *Array) SetCPUType(name string) {
	if a.Realized() {
		return
	}
	a.cfg.CPUType = name
}

// Realized returns true if Realize() has completed successfully.
func (a *Array) Realized() bool {
	return a.harts != nil
}

// Realize validates the configuration and creates the harts. Every hart is
// reset to the configured reset vector.
func (a *Array) Realize() error {
	if a.Realized() {
		return curated.Errorf(AlreadyRealized)
	}

	if a.cfg.NumHarts < 1 {
		return curated.Errorf(InvalidCount, a.cfg.NumHarts)
	}

	t, ok := LookupCPUType(a.cfg.CPUType)
	if !ok {
		return curated.Errorf(UnknownCPUType, a.cfg.CPUType)
	}

	harts := make([]*Hart, a.cfg.NumHarts)
	for i := range harts {
		harts[i] = &Hart{
			ID:       i,
			XLEN:     t.XLEN,
			ResetVec: a.cfg.ResetVec,
		}
		harts[i].Reset()
	}
	a.harts = harts

	return nil
}

// Harts returns the harts in the array. Nil if the array is not realized.
func (a *Array) Harts() []*Hart {
	return a.harts
}

// Reset resets every hart in the array.
func (a *Array) Reset() error {
	if !a.Realized() {
		return curated.Errorf(NotRealized)
	}
	for _, h := range a.harts {
		h.Reset()
	}
	return nil
}

func (a *Array) String() string {
	s := strings.Builder{}
	for _, h := range a.harts {
		s.WriteString(h.String())
		s.WriteString("\n")
	}
	return s.String()
}
