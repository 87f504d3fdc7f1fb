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
	"bytes"
	"io"
	"sync"

	"github.com/rvboard/rvboard/curated"
)

// Error patterns used by the serial package.
const (
	AlreadyClaimed = "serial: backend %s already claimed by %s"
	NotClaimed     = "serial: backend %s not claimed by %s"
	UnknownBackend = "serial: unknown backend (%s)"
	BackendError   = "serial: backend %s: %v"
)

// Backend is the host side of a serial connection. The zero value is not
// usable; use NewBackend(), NewStreamBackend() or one of the Open*()
// functions.
type Backend struct {
	crit sync.Mutex

	name string
	rw   io.ReadWriter

	// closer is called by Close(). may be nil
	closer func() error

	// the current claimant. an empty owner name is a valid claim so the
	// claimed flag and not the owner says whether the backend is free
	claimed bool
	owner   string

	// input bytes read from rw by the pump goroutine. nil if the backend is
	// read directly
	input     chan byte
	startPump sync.Once
}

// the number of input bytes buffered by a stream backend
const inputBuffer = 256

// NewBackend creates a Backend from any io.ReadWriter. If rw is also an
// io.Closer then it is closed by Close().
func NewBackend(name string, rw io.ReadWriter) *Backend {
	b := &Backend{
		name: name,
		rw:   rw,
	}
	if c, ok := rw.(io.Closer); ok {
		b.closer = c.Close
	}
	return b
}

// NewStreamBackend creates a Backend for a reader that may block, such as a
// terminal or a host serial device. Input is read by a separate goroutine so
// that Read() never waits for the host.
func NewStreamBackend(name string, rw io.ReadWriter) *Backend {
	b := NewBackend(name, rw)
	b.input = make(chan byte, inputBuffer)
	return b
}

func (b *Backend) String() string {
	return b.name
}

// Claim gives ownership of the backend to owner. Fails if the backend is
// already claimed, even if by the same owner.
func (b *Backend) Claim(owner string) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.claimed {
		return curated.Errorf(AlreadyClaimed, b.name, b.owner)
	}
	b.claimed = true
	b.owner = owner

	return nil
}

// Release returns the backend to the unclaimed state. Fails if the backend is
// not currently claimed by owner.
func (b *Backend) Release(owner string) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	if !b.claimed || b.owner != owner {
		return curated.Errorf(NotClaimed, b.name, owner)
	}
	b.claimed = false
	b.owner = ""

	return nil
}

// Claimed returns true if the backend is currently claimed.
func (b *Backend) Claimed() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.claimed
}

// Owner returns the current claimant. The empty string if unclaimed or if
// the claim was made with an empty owner name.
func (b *Backend) Owner() string {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.owner
}

// Write implements the io.Writer interface.
func (b *Backend) Write(p []byte) (int, error) {
	n, err := b.rw.Write(p)
	if err != nil {
		return n, curated.Errorf(BackendError, b.name, err)
	}
	return n, nil
}

// Read implements the io.Reader interface.
//
// For a stream backend Read returns whatever input has already arrived and
// returns zero bytes and no error if there is none. io.EOF is returned once
// the host input has ended and all buffered input has been read. For other
// backends Read blocks as the underlying reader does.
func (b *Backend) Read(p []byte) (int, error) {
	if b.input == nil {
		return b.rw.Read(p)
	}

	b.startPump.Do(func() {
		go b.pump()
	})

	n := 0
	for n < len(p) {
		select {
		case v, ok := <-b.input:
			if !ok {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			p[n] = v
			n++
		default:
			return n, nil
		}
	}
	return n, nil
}

// pump copies input from the underlying reader to the input channel until
// the reader fails.
func (b *Backend) pump() {
	defer close(b.input)

	var v [1]byte
	for {
		n, err := b.rw.Read(v[:])
		if n == 1 {
			b.input <- v[0]
		}
		if err != nil {
			return
		}
	}
}

// Close releases host resources held by the backend.
func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	if err := b.closer(); err != nil {
		return curated.Errorf(BackendError, b.name, err)
	}
	return nil
}

type null struct{}

func (null) Read(_ []byte) (int, error) {
	return 0, io.EOF
}

func (null) Write(p []byte) (int, error) {
	return len(p), nil
}

// NullBackend discards all output and never has any input.
func NullBackend() *Backend {
	return NewBackend("null", null{})
}

// BufferBackend collects output in the returned buffer. Input is read from
// the same buffer.
func BufferBackend(name string) (*Backend, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewBackend(name, buf), buf
}
