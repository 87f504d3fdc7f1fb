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

// Package logger is the central log repository for rvboard. Log entries are
// made up of a tag and a detail. The tag names the area of the board the
// entry concerns (for example "soc" or "machine") and the detail says what
// happened.
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count. Only the most recent entries are kept.
//
// Every call to Log() or Logf() requires a Permission. An emulation
// environment implements the Permission interface so that, for example, a
// throwaway machine built for a snapshot does not pollute the log of the
// main machine. Use logger.Allow when there is no environment to consult.
package logger
