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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() is the most basic and probably the most useful
// function. It compares like-typed variables for equality and returns true if
// they match. The Expect*() functins report an error and allow the test to
// continue. The Demand*() functions stop the test immediately.
//
// ExpectSuccess() and ExpectFailure() test for success and failure. The
// functions accept a value of type bool or of type error. A nil error is a
// success and non-nil error is a failure.
//
// The Writer type implements the io.Writer interface and can be used to
// capture output; the Compare() function tests for equality.
package test
