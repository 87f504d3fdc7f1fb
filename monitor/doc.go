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

// Package monitor is a line based command shell for inspecting a running
// machine. Commands are handled by Execute(), which can be driven by any
// source of lines. Run() drives Execute() from an interactive terminal with
// line editing and history.
//
// Addresses and values may be given in decimal or with a 0x prefix for hex.
package monitor
