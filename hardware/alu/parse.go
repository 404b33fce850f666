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
	"strconv"
	"strings"

	"github.com/jetsetilly/datapath/curated"
	"github.com/jetsetilly/datapath/hardware/alu/arithmetic"
	"github.com/jetsetilly/datapath/hardware/alu/flags"
	"github.com/jetsetilly/datapath/hardware/alu/logic"
)

// UnknownOpcode is the curated error pattern returned by ParseOpcode().
const UnknownOpcode = "alu: unknown opcode (%s)"

// ParseOpcode returns the opcode for an operation name, such as "ADD" or
// "ROL", together with the path that publishes the result of the operation.
// Case is ignored.
//
// A number is also accepted, in which case the path is chosen by the family
// of the opcode. Reserved families select the arithmetic path.
func ParseOpcode(s string) (Opcode, flags.Path, error) {
	name := strings.ToUpper(strings.TrimSpace(s))

	for op := arithmetic.Op(0); op < arithmetic.NumOps; op++ {
		if op.String() == name {
			return ArithmeticOpcode(op), flags.Arithmetic, nil
		}
	}

	for op := logic.Op(0); op < logic.NumOps; op++ {
		if op.String() == name {
			return LogicOpcode(op), flags.Logic, nil
		}
	}

	v, err := strconv.ParseUint(name, 0, 8)
	if err != nil || v > OpcodeMask {
		return 0, flags.Arithmetic, curated.Errorf(UnknownOpcode, s)
	}

	op := Opcode(v)
	if op.Family() == FamilyLogic {
		return op, flags.Logic, nil
	}
	return op, flags.Arithmetic, nil
}
