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

// Package serial is the UART of the board and the host side backends it can
// be connected to.
//
// A Backend is exclusively claimable. A Device claims its backend when it is
// created and releases it when it is closed. A second claim on a backend
// fails for as long as the first claim is held:
//
//	be, _ := serial.Open("tty")
//	uart, err := serial.NewDevice("soc", base, size, serial.Clock, be)
//
// The Device emulates the register window of a 16550 just far enough for a
// program to transmit bytes. Bytes written to the transmit holding register
// are written to the backend.
package serial
