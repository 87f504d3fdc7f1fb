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

// Package soc composes the system-on-chip of the board: the hart array, the
// mask ROM and the UART.
//
// Bring-up is in two steps. Instantiate() turns the environment preferences
// into a Plan. Realize() consumes the Plan and returns a fully working SoC
// or an error. Nothing is left mapped in the address space, and the serial
// backend is not left claimed, when Realize() fails.
//
//	plan, err := soc.Instantiate(env)
//	s, err := soc.Realize(env, plan, sys, backend)
//
// The serial backend is exclusively claimable. Only one live SoC can hold a
// given backend and so a second SoC realized with the same backend fails with
// a ResourceConflict. The first SoC is not affected.
package soc
