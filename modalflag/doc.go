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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes (and sub-modes), each with their own set of flags.
//
// Arguments are given to NewArgs() and parsed with Parse(). Flags for the
// next Parse() are added with the Add*() functions and the sub-modes that may
// follow the flags with AddSubModes(). The first sub-mode listed is the
// default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MAP", "VECTOR")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "VECTOR":
//		md.NewMode()
//		base := md.AddAddress("base", 0x80000000, "RAM base address")
//		...
//	}
//
// Sub-mode names are case insensitive. A command line that names no sub-mode
// selects the default sub-mode, in which case the arguments are parsed again
// under the flags of that mode.
//
// Help is printed to Output when the -help flag is given. The help lists the
// flags of the current mode and the available sub-modes.
package modalflag
