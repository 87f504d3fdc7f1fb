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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages export their
// patterns as constants so that callers can classify an error without
// inspecting the message text:
//
//	const ResourceConflict = "soc: resource conflict: %v"
//
//	err := curated.Errorf(ResourceConflict, "uart backend claimed by soc#1")
//	if curated.Is(err, ResourceConflict) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. The chain is formed by curated errors being used as
// placeholder values in other curated errors.
//
//	e := curated.Errorf(harts.UnknownCPUType, "z80")
//	f := curated.Errorf(soc.ConfigurationError, e)
//
//	curated.Has(f, harts.UnknownCPUType) // true
//
// Curated errors also cooperate with the errors package of the standard
// library. The first error value in the placeholder list is returned by
// Unwrap().
package curated
