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

// Package snapshot records the state of a board at a point in time and
// encodes it as CBOR.
//
// The encoding is canonical: two snapshots of identical state encode to
// identical bytes. A snapshot is a description of the board and cannot be
// used to restore one.
package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Hart is the state of one hart.
type Hart struct {
	ID       int    `cbor:"1,keyasint"`
	XLEN     int    `cbor:"2,keyasint"`
	PC       uint64 `cbor:"3,keyasint"`
	ResetVec uint64 `cbor:"4,keyasint"`
}

// Region is a mapped area of the address space.
type Region struct {
	Label    string `cbor:"1,keyasint"`
	Base     uint64 `cbor:"2,keyasint"`
	Size     uint64 `cbor:"3,keyasint"`
	ReadOnly bool   `cbor:"4,keyasint"`
}

// State is the snapshot of a board.
type State struct {
	Label   string   `cbor:"1,keyasint"`
	CPUType string   `cbor:"2,keyasint"`
	Harts   []Hart   `cbor:"3,keyasint"`
	Regions []Region `cbor:"4,keyasint"`

	// the reset stub as placed in the mask ROM
	ResetVector []byte `cbor:"5,keyasint"`

	// blake2b-256 of RAM contents
	RAMDigest string `cbor:"6,keyasint"`

	// boot image, if one was loaded
	Image     string `cbor:"7,keyasint,omitempty"`
	ImageHash string `cbor:"8,keyasint,omitempty"`
}

var encMode cbor.EncMode
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: cbor encoder: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: cbor decoder: %v", err))
	}
}

// Encode the state as CBOR.
func Encode(s State) ([]byte, error) {
	return encMode.Marshal(s)
}

// Decode CBOR data into a State.
func Decode(data []byte) (State, error) {
	var s State
	if err := decMode.Unmarshal(data, &s); err != nil {
		return State{}, err
	}
	return s, nil
}
