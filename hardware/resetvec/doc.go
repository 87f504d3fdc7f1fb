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

// Package resetvec synthesizes the reset stub that is placed at the start of
// the mask ROM. The stub is four 32-bit instruction words:
//
//	0x1000: unimp
//	0x1004: li    t0, k
//	0x1008: slli  t0, t0, 28
//	0x100c: jr    t0
//
// where k is the RAM base shifted right by 28 bits. Harts are released from
// reset at the second word (EntryOffset) and so arrive at the start of RAM
// after three instructions.
//
// The sequence can only express a RAM base that is a multiple of 1<<28 with
// a k that fits in eight bits. Synthesize() fails for any other base rather
// than emit a jump to the wrong address. This is a property of the board and
// not a general purpose "load address" encoder.
package resetvec
