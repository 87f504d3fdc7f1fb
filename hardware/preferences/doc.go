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

// Package preferences is the platform configuration of the board: the number
// of harts, the hart type, the optional boot image and the serial backend.
//
// Preferences are plain values. They can be loaded from and saved to a YAML
// file and are then handed explicitly to the constructors that need them.
// Nothing in the hardware packages reaches for a global configuration.
package preferences
