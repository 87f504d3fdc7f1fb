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

// Package bootloader places a boot image into RAM before the harts are
// released from reset.
//
// The Loader type reads the image from a local file or from an http(s) URL and
// records the sha1 hash of the data. If the Hash field is set before calling
// Load() then the loaded data must match it.
//
// Place() writes the image into memory. An ELF image has each of its loadable
// segments written at the segment's physical address. Any other data is
// treated as a flat binary and written at the destination address. Apart from
// recognising ELF, the contents of the image are not interpreted.
package bootloader
