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

// Package hardware is the base package for the board emulation. The Machine
// type composes the board from the SoC, RAM and the reset stub in the mask
// ROM, and optionally places a boot image into RAM.
//
// NewMachine() performs the whole bring-up in order:
//
//  1. instantiate and realize the SoC (package soc)
//  2. create and map RAM at its memory map base
//  3. synthesize the reset stub for the RAM base, place it at the mask ROM
//     base and seal the mask ROM
//  4. if the preferences name a boot image, load it at the RAM base
//
// A failure in steps 1 to 3 is fatal. NewMachine() returns a nil Machine and
// nothing remains mapped or claimed. A failure in step 4 is an
// ImageLoadFailure; the returned Machine is complete and usable even though
// RAM does not contain the image.
//
// After bring-up, a hart released from reset at the mask ROM entry offset will
// execute the reset stub, jump to the start of RAM and find the first
// instruction of the boot image there.
package hardware
