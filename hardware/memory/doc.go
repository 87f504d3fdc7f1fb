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

// Package memory is the physical address space of the board. Memory areas
// are created separately and then mapped into an AddressSpace at their origin
// address. The AddressSpace refuses to map an area that overlaps an area that
// is already mapped.
//
// There are three kinds of area provided by the package. RAM is readable and
// writable. ROM can be written to with Poke() and Load() while the board is
// being set up but after Seal() has been called it is permanently read only.
// Unimplemented areas occupy address space but every access to them fails.
//
// Devices with register windows (the UART for example) implement the Area
// interface themselves.
//
// Read() and Write() are accesses as seen by a hart on the bus. Peek() and
// Poke() are for setup and debugging and do not have side effects on device
// registers.
package memory
