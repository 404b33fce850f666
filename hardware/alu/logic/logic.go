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

package logic

import "math/bits"

// only the low five bits of operand b are used as a shift amount
const amountMask = 0x1f

// Result is the output of the logic unit.
type Result struct {
	Value uint32
	Carry bool
}

// Amount returns the shift/rotate/bit-position amount encoded in operand b.
func Amount(b uint32) uint {
	return uint(b & amountMask)
}

// Evaluate the operation for operands a and b. NOT is unary and uses only
// operand a.
func Evaluate(a, b uint32, op Op) Result {
	n := Amount(b)

	switch op {
	case AND:
		return Result{Value: a & b}
	case OR:
		return Result{Value: a | b}
	case XOR:
		return Result{Value: a ^ b}
	case NOT:
		return Result{Value: ^a}
	case NAND:
		return Result{Value: ^(a & b)}
	case NOR:
		return Result{Value: ^(a | b)}
	case XNOR:
		return Result{Value: ^(a ^ b)}
	}

	if op.Shifting() && n == 0 {
		return Result{Value: a}
	}

	switch op {
	case SHL:
		return Result{
			Value: a << n,
			Carry: (a>>(32-n))&1 == 1,
		}

	case SHR:
		return Result{
			Value: a >> n,
			Carry: (a>>(n-1))&1 == 1,
		}

	case SAR:
		return Result{
			Value: uint32(int32(a) >> n),
			Carry: (a>>(n-1))&1 == 1,
		}

	case ROL:
		// the last bit rotated out of bit 31 is the one that arrives in bit 0
		v := bits.RotateLeft32(a, int(n))
		return Result{
			Value: v,
			Carry: v&1 == 1,
		}

	case ROR:
		// the last bit rotated out of bit 0 is the one that arrives in bit 31
		v := bits.RotateLeft32(a, -int(n))
		return Result{
			Value: v,
			Carry: v>>31 == 1,
		}

	case BSET:
		return Result{Value: a | (1 << n)}
	case BCLR:
		return Result{Value: a &^ (1 << n)}
	case BTGL:
		return Result{Value: a ^ (1 << n)}
	}

	return Result{}
}
