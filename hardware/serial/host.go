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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-tty"
	"github.com/pkg/term"
	"github.com/rvboard/rvboard/curated"
)

// DefaultBaud is used by OpenDevice() when the spec string does not include
// a baud rate.
const DefaultBaud = 115200

type ttyRW struct {
	t       *tty.TTY
	restore func() error
}

func (r *ttyRW) Read(p []byte) (int, error) {
	return r.t.Input().Read(p)
}

func (r *ttyRW) Write(p []byte) (int, error) {
	return r.t.Output().Write(p)
}

func (r *ttyRW) Close() error {
	if r.restore != nil {
		_ = r.restore()
	}
	return r.t.Close()
}

// OpenTTY connects to the controlling terminal of the process. The terminal
// is put into raw mode until the backend is closed.
func OpenTTY() (*Backend, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, curated.Errorf(BackendError, "tty", err)
	}

	restore, err := t.Raw()
	if err != nil {
		t.Close()
		return nil, curated.Errorf(BackendError, "tty", err)
	}

	return NewStreamBackend("tty", &ttyRW{t: t, restore: restore}), nil
}

// OpenDevice connects to a host serial device (for example /dev/ttyUSB0) in
// raw mode at the baud rate.
func OpenDevice(path string, baud int) (*Backend, error) {
	t, err := term.Open(path, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(BackendError, path, err)
	}
	return NewStreamBackend(path, t), nil
}

type stdio struct {
	in  io.Reader
	out io.Writer
}

func (s stdio) Read(p []byte) (int, error) {
	return s.in.Read(p)
}

func (s stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Open creates a backend from a specification string:
//
//	null                      discard output
//	stdio                     standard input and output, unchanged
//	tty                       controlling terminal in raw mode
//	device:<path>[@<baud>]    host serial device
func Open(spec string) (*Backend, error) {
	spec = strings.TrimSpace(spec)

	switch strings.ToLower(spec) {
	case "", "null":
		return NullBackend(), nil
	case "stdio":
		return NewStreamBackend("stdio", stdio{in: os.Stdin, out: os.Stdout}), nil
	case "tty":
		return OpenTTY()
	}

	if p, ok := strings.CutPrefix(spec, "device:"); ok {
		baud := DefaultBaud
		if i := strings.LastIndex(p, "@"); i >= 0 {
			b, err := strconv.Atoi(p[i+1:])
			if err != nil || b <= 0 {
				return nil, curated.Errorf(UnknownBackend, spec)
			}
			baud = b
			p = p[:i]
		}
		if p == "" {
			return nil, curated.Errorf(UnknownBackend, spec)
		}
		return OpenDevice(p, baud)
	}

	return nil, curated.Errorf(UnknownBackend, spec)
}
