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

// Package harts is the processor array of the board. The array is configured
// with the number of harts, the hart type and the address every hart starts
// executing from after reset. Realize() checks the configuration and creates
// the harts.
//
// Instruction execution is not part of this package. A Hart records its
// identity and the state of its program counter.
package harts
