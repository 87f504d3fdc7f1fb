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

package serial

import (
	"fmt"

	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/hardware/memory"
)

// Clock is the input clock of the board's UART.
const Clock = 399193

// register offsets. registers are one byte apart
const (
	regTHR = 0 // transmit holding (write), receive buffer (read)
	regIER = 1
	regIIR = 2 // interrupt identification (read), fifo control (write)
	regLCR = 3
	regMCR = 4
	regLSR = 5
	regMSR = 6
	regSCR = 7

	numRegisters = 8
)

// register bits
const (
	lcrDLAB = 0x80

	lsrDR   = 0x01
	lsrTHRE = 0x20
	lsrTEMT = 0x40

	iirNoInterrupt = 0x01
)

// Device is a minimal 16550 UART mapped into the address space.
type Device struct {
	memory.AreaInfo

	owner   string
	clock   uint32
	backend *Backend

	regs [numRegisters]uint8

	// divisor latch
	dll uint8
	dlm uint8

	// a single byte of receive buffering
	rx      uint8
	rxValid bool
}

// NewDevice claims the backend on behalf of owner and returns a Device for
// the address range. The claim is held until Close() is called.
func NewDevice(owner string, origin uint64, size uint64, clock uint32, backend *Backend) (*Device, error) {
	if backend == nil {
		return nil, curated.Errorf(UnknownBackend, "nil")
	}
	if size < numRegisters {
		return nil, curated.Errorf(memory.MapInvalid, fmt.Sprintf("uart window of %d bytes", size))
	}

	if err := backend.Claim(owner); err != nil {
		return nil, err
	}

	return &Device{
		AreaInfo: memory.NewAreaInfo("uart", origin, size),
		owner:    owner,
		clock:    clock,
		backend:  backend,
		dll:      1,
	}, nil
}

// Close releases the claim on the backend. The backend itself is not closed
// because the device did not create it.
func (d *Device) Close() error {
	if d.backend == nil {
		return nil
	}
	err := d.backend.Release(d.owner)
	d.backend = nil
	return err
}

// Backend returns the backend the device is bound to. Nil after Close().
func (d *Device) Backend() *Backend {
	return d.backend
}

// Clock returns the input clock frequency.
func (d *Device) Clock() uint32 {
	return d.clock
}

// Baud returns the baud rate implied by the clock and the divisor latch.
func (d *Device) Baud() uint32 {
	div := uint32(d.dlm)<<8 | uint32(d.dll)
	if div == 0 {
		return 0
	}
	return d.clock / (16 * div)
}

func (d *Device) dlab() bool {
	return d.regs[regLCR]&lcrDLAB == lcrDLAB
}

func (d *Device) lsr() uint8 {
	v := uint8(lsrTHRE | lsrTEMT)
	if d.rxValid {
		v |= lsrDR
	}
	return v
}

// Read implements the memory.Area interface.
func (d *Device) Read(offset uint64) (uint8, error) {
	if offset >= numRegisters {
		return 0, nil
	}

	switch offset {
	case regTHR:
		if d.dlab() {
			return d.dll, nil
		}
		if !d.rxValid {
			d.poll()
		}
		v := d.rx
		d.rxValid = false
		return v, nil
	case regIER:
		if d.dlab() {
			return d.dlm, nil
		}
	case regIIR:
		return iirNoInterrupt, nil
	case regLSR:
		if !d.rxValid {
			d.poll()
		}
		return d.lsr(), nil
	}

	return d.regs[offset], nil
}

// poll tries to fill the receive buffer from the backend. Only blocks if the
// backend was created with NewBackend() around a blocking reader.
func (d *Device) poll() {
	if d.backend == nil {
		return
	}
	var b [1]byte
	if n, _ := d.backend.Read(b[:]); n == 1 {
		d.rx = b[0]
		d.rxValid = true
	}
}

// Write implements the memory.Area interface.
func (d *Device) Write(offset uint64, data uint8) error {
	if offset >= numRegisters {
		return nil
	}

	switch offset {
	case regTHR:
		if d.dlab() {
			d.dll = data
			return nil
		}
		if d.backend == nil {
			return nil
		}
		_, err := d.backend.Write([]byte{data})
		return err
	case regIER:
		if d.dlab() {
			d.dlm = data
			return nil
		}
	case regIIR, regLSR, regMSR:
		// fifo control is accepted and ignored. status registers are read only
		return nil
	}

	d.regs[offset] = data
	return nil
}

// Peek implements the memory.Area interface. Peek does not consume received
// data.
func (d *Device) Peek(offset uint64) (uint8, error) {
	switch offset {
	case regTHR:
		if d.dlab() {
			return d.dll, nil
		}
		return d.rx, nil
	case regLSR:
		return d.lsr(), nil
	case regIIR:
		return iirNoInterrupt, nil
	}
	if offset >= numRegisters {
		return 0, nil
	}
	return d.regs[offset], nil
}

// Poke implements the memory.Area interface. Poke never transmits.
func (d *Device) Poke(offset uint64, value uint8) error {
	if offset < numRegisters {
		d.regs[offset] = value
	}
	return nil
}

func (d *Device) String() string {
	return fmt.Sprintf("uart at 0x%08x (clock %d, backend %s)", d.Origin(), d.clock, d.backend)
}
