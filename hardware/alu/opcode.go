// This file is part of Datapath.
//
// Datapath is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Datapath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Datapath.  If not, see <https://www.gnu.org/licenses/>.

package alu

import (
	"fmt"

	"github.com/jetsetilly/datapath/hardware/alu/arithmetic"
	"github.com/jetsetilly/datapath/hardware/alu/logic"
)

// Family is the operation family encoded in bits 5 and 4 of an Opcode.
type Family uint8

// List of Family values. Families two and three are reserved.
const (
	FamilyArithmetic Family = iota
	FamilyLogic
	FamilyReserved2
	FamilyReserved3
)

func (f Family) String() string {
	switch f {
	case FamilyArithmetic:
		return "arithmetic"
	case FamilyLogic:
		return "logic"
	}
	return "reserved"
}

// Opcode is the six bit operation code presented to the ALU bank.
type Opcode uint8

// OpcodeMask is the mask of meaningful bits in an Opcode.
const OpcodeMask = 0x3f

// ArithmeticOpcode returns the opcode for an operation of the arithmetic
// family.
func ArithmeticOpcode(op arithmetic.Op) Opcode {
	return Opcode(FamilyArithmetic)<<4 | Opcode(op&0x0f)
}

// LogicOpcode returns the opcode for an operation of the logic family.
func LogicOpcode(op logic.Op) Opcode {
	return Opcode(FamilyLogic)<<4 | Opcode(op&0x0f)
}

// Family returns bits 5 and 4 of the opcode.
func (op Opcode) Family() Family {
	return Family((op & OpcodeMask) >> 4)
}

// Code returns bits 3 to 0 of the opcode. The code is presented to both
// units.
func (op Opcode) Code() uint8 {
	return uint8(op & 0x0f)
}

func (op Opcode) String() string {
	switch op.Family() {
	case FamilyArithmetic:
		return fmt.Sprintf("%s (0x%02x)", arithmetic.Op(op.Code()), uint8(op&OpcodeMask))
	case FamilyLogic:
		return fmt.Sprintf("%s (0x%02x)", logic.Op(op.Code()), uint8(op&OpcodeMask))
	}
	return fmt.Sprintf("reserved (0x%02x)", uint8(op&OpcodeMask))
}
