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

package arithmetic

const (
	width    = 32
	signBit  = uint32(1) << (width - 1)
	mostNeg  = uint32(0x80000000)
	mostPos  = uint32(0x7fffffff)
	extCarry = uint64(1) << width
	extMask  = extCarry<<1 - 1
)

// Result is the output of the arithmetic unit.
type Result struct {
	Value    uint32
	Carry    bool
	Overflow bool
}

func negative(v uint32) bool {
	return v&signBit == signBit
}

// add performs a+b+cin in the extended domain.
func add(a, b uint32, cin uint64) Result {
	ext := (uint64(a) + uint64(b) + cin) & extMask
	r := Result{
		Value: uint32(ext),
		Carry: ext&extCarry == extCarry,
	}
	r.Overflow = negative(a) == negative(b) && negative(r.Value) != negative(a)
	return r
}

// sub performs a-b-bin in the extended domain. the carry field of the result
// is the borrow out of bit 31.
func sub(a, b uint32, bin uint64) Result {
	ext := (uint64(a) - uint64(b) - bin) & extMask
	r := Result{
		Value: uint32(ext),
		Carry: ext&extCarry == extCarry,
	}
	r.Overflow = negative(a) != negative(b) && negative(r.Value) != negative(a)
	return r
}

// Evaluate the operation for operands a and b. Operations that are unary use
// only operand a.
func Evaluate(a, b uint32, op Op) Result {
	switch op {
	case ADD:
		return add(a, b, 0)

	case SUB:
		return sub(a, b, 0)

	case INC:
		r := add(a, 1, 0)
		r.Overflow = a == mostPos
		return r

	case DEC:
		r := sub(a, 1, 0)
		r.Overflow = a == mostNeg
		return r

	case MUL:
		p := int64(int32(a)) * int64(int32(b))
		lo := uint32(p)
		hi := uint32(uint64(p) >> width)

		// the upper word of a product that fits in 32 bits is the sign
		// extension of the lower word
		var ext uint32
		if negative(lo) {
			ext = 0xffffffff
		}

		return Result{
			Value:    lo,
			Carry:    hi != 0,
			Overflow: hi != ext,
		}

	case CMP:
		// flags only. the difference is discarded
		r := sub(a, b, 0)
		r.Value = 0
		return r

	case NEG:
		return Result{
			Value:    -a,
			Overflow: a == mostNeg,
		}

	case ABS:
		v := a
		if negative(a) {
			v = -a
		}
		return Result{
			Value:    v,
			Overflow: a == mostNeg,
		}

	case ADDC:
		return add(a, b, 1)

	case SUBB:
		return sub(a, b, 1)
	}

	return Result{}
}
