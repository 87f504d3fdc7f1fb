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

import "fmt"

// RISC-V register numbers.
const (
	RegZero = 0
	RegT0   = 5
)

// major opcodes and funct3 values of the instructions used by the stub.
const (
	opImm  = 0x13
	opJALR = 0x67

	funct3ADDI = 0x0
	funct3SLLI = 0x1
	funct3JALR = 0x0
)

// Unimp is the all zero instruction word. It is defined to be an illegal
// instruction.
const Unimp = uint32(0x00000000)

func iType(opcode uint32, rd, funct3, rs1 int, imm int32) uint32 {
	return uint32(imm&0xfff)<<20 | uint32(rs1&0x1f)<<15 | uint32(funct3&0x7)<<12 | uint32(rd&0x1f)<<7 | opcode
}

// EncodeADDI encodes "addi rd, rs1, imm". The immediate is truncated to 12
// bits.
func EncodeADDI(rd, rs1 int, imm int32) uint32 {
	return iType(opImm, rd, funct3ADDI, rs1, imm)
}

// EncodeSLLI encodes "slli rd, rs1, shamt" for RV64 (six bit shift amount).
func EncodeSLLI(rd, rs1 int, shamt uint) uint32 {
	return iType(opImm, rd, funct3SLLI, rs1, int32(shamt&0x3f))
}

// EncodeJALR encodes "jalr rd, imm(rs1)".
func EncodeJALR(rd, rs1 int, imm int32) uint32 {
	return iType(opJALR, rd, funct3JALR, rs1, imm)
}

// Instruction is a decoded I-type instruction. Only the fields needed to
// follow the reset stub are decoded.
type Instruction struct {
	Word   uint32
	Opcode uint32
	Rd     int
	Funct3 int
	Rs1    int

	// sign extended 12 bit immediate
	Imm int32
}

// Decode splits an instruction word into I-type fields.
func Decode(word uint32) Instruction {
	return Instruction{
		Word:   word,
		Opcode: word & 0x7f,
		Rd:     int(word>>7) & 0x1f,
		Funct3: int(word>>12) & 0x7,
		Rs1:    int(word>>15) & 0x1f,
		Imm:    int32(word) >> 20,
	}
}

func regName(r int) string {
	switch r {
	case RegZero:
		return "zero"
	case RegT0:
		return "t0"
	}
	return fmt.Sprintf("x%d", r)
}

// String returns the assembly form of the instruction. It only knows about
// the instructions that appear in the reset stub.
func (ins Instruction) String() string {
	switch {
	case ins.Word == Unimp:
		return "unimp"
	case ins.Opcode == opImm && ins.Funct3 == funct3ADDI && ins.Rs1 == RegZero:
		return fmt.Sprintf("li %s,%d", regName(ins.Rd), ins.Imm)
	case ins.Opcode == opImm && ins.Funct3 == funct3ADDI:
		return fmt.Sprintf("addi %s,%s,%d", regName(ins.Rd), regName(ins.Rs1), ins.Imm)
	case ins.Opcode == opImm && ins.Funct3 == funct3SLLI:
		return fmt.Sprintf("slli %s,%s,%#x", regName(ins.Rd), regName(ins.Rs1), ins.Imm&0x3f)
	case ins.Opcode == opJALR && ins.Rd == RegZero && ins.Imm == 0:
		return fmt.Sprintf("jr %s", regName(ins.Rs1))
	case ins.Opcode == opJALR:
		return fmt.Sprintf("jalr %s,%d(%s)", regName(ins.Rd), ins.Imm, regName(ins.Rs1))
	}
	return fmt.Sprintf(".word 0x%08x", ins.Word)
}
