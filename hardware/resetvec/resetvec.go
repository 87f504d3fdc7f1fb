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

package resetvec

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/rvboard/rvboard/curated"
)

// EncodingConstraintViolation is returned by Synthesize() when the RAM base
// cannot be expressed by the reset stub.
const EncodingConstraintViolation = "resetvec: ram base %#x cannot be encoded: %s"

const (
	// NumWords is the number of instruction words in the stub.
	NumWords = 4

	// Size is the size of the stub in bytes.
	Size = NumWords * 4

	// EntryOffset is the offset from the ROM base of the first instruction
	// that harts execute. The first word is a placeholder.
	EntryOffset = 4

	// Shift is the left shift applied to the loaded constant.
	Shift = 28

	// MaxConstant is the largest constant the stub will load.
	MaxConstant = 0xff
)

// Vector is the synthesized reset stub. It is a value type and cannot be
// altered once created.
type Vector struct {
	words [NumWords]uint32
}

// Synthesize returns the reset stub for a board with RAM at ramBase.
func Synthesize(ramBase uint64) (Vector, error) {
	if ramBase&(1<<Shift-1) != 0 {
		return Vector{}, curated.Errorf(EncodingConstraintViolation, ramBase, "not a multiple of 1<<28")
	}

	k := ramBase >> Shift
	if k > MaxConstant {
		return Vector{}, curated.Errorf(EncodingConstraintViolation, ramBase, "constant out of range")
	}

	v := Vector{
		words: [NumWords]uint32{
			Unimp,
			EncodeADDI(RegT0, RegZero, int32(k)),
			EncodeSLLI(RegT0, RegT0, Shift),
			EncodeJALR(RegZero, RegT0, 0),
		},
	}

	// the jump target is decoded from the words that have just been encoded.
	// a mismatch means the encoding is wrong for this base
	if t := v.Target(); t != ramBase {
		return Vector{}, curated.Errorf(EncodingConstraintViolation, ramBase, fmt.Sprintf("stub jumps to %#x", t))
	}

	return v, nil
}

// Words returns the stub as instruction words.
func (v Vector) Words() [NumWords]uint32 {
	return v.words
}

// Bytes returns the stub in the little-endian byte order of the board,
// regardless of the byte order of the host.
func (v Vector) Bytes() []byte {
	b := make([]byte, Size)
	for i, w := range v.words {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}

// Target follows the instructions from EntryOffset and returns the address
// the final jump lands on. Registers other than t0 and zero are not tracked.
func (v Vector) Target() uint64 {
	var t0 uint64
	for _, w := range v.words[EntryOffset/4:] {
		ins := Decode(w)
		switch {
		case ins.Opcode == opImm && ins.Funct3 == funct3ADDI && ins.Rd == RegT0:
			var src uint64
			if ins.Rs1 == RegT0 {
				src = t0
			}
			t0 = src + uint64(int64(ins.Imm))
		case ins.Opcode == opImm && ins.Funct3 == funct3SLLI && ins.Rd == RegT0 && ins.Rs1 == RegT0:
			t0 <<= uint(ins.Imm & 0x3f)
		case ins.Opcode == opJALR && ins.Rs1 == RegT0:
			return (t0 + uint64(int64(ins.Imm))) &^ 1
		}
	}
	return 0
}

// String returns a listing of the stub as if placed at origin.
func (v Vector) String() string {
	return v.Listing(0)
}

// Listing returns a listing of the stub as if placed at origin.
func (v Vector) Listing(origin uint64) string {
	s := strings.Builder{}
	for i, w := range v.words {
		s.WriteString(fmt.Sprintf("0x%08x: %08x  %s\n", origin+uint64(i*4), w, Decode(w)))
	}
	return s.String()
}
