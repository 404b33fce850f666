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

package arithmetic_test

import (
	"math/rand"
	"testing"

	"github.com/jetsetilly/datapath/hardware/alu/arithmetic"
	"github.com/jetsetilly/datapath/test"
)

type vector struct {
	a, b     uint32
	op       arithmetic.Op
	value    uint32
	carry    bool
	overflow bool
}

func TestVectors(t *testing.T) {
	vectors := []vector{
		// addition
		{a: 1, b: 2, op: arithmetic.ADD, value: 3},
		{a: 0x7fffffff, b: 1, op: arithmetic.ADD, value: 0x80000000, overflow: true},
		{a: 0xffffffff, b: 1, op: arithmetic.ADD, value: 0, carry: true},
		{a: 0x80000000, b: 0x80000000, op: arithmetic.ADD, value: 0, carry: true, overflow: true},
		{a: 0xffffffff, b: 0xffffffff, op: arithmetic.ADD, value: 0xfffffffe, carry: true},

		// subtraction. carry is the borrow
		{a: 5, b: 3, op: arithmetic.SUB, value: 2},
		{a: 3, b: 5, op: arithmetic.SUB, value: 0xfffffffe, carry: true},
		{a: 0x80000000, b: 1, op: arithmetic.SUB, value: 0x7fffffff, overflow: true},
		{a: 0x7fffffff, b: 0xffffffff, op: arithmetic.SUB, value: 0x80000000, carry: true, overflow: true},

		// increment and decrement
		{a: 0x7fffffff, op: arithmetic.INC, value: 0x80000000, overflow: true},
		{a: 0xffffffff, op: arithmetic.INC, value: 0, carry: true},
		{a: 0x80000000, op: arithmetic.DEC, value: 0x7fffffff, overflow: true},
		{a: 0, op: arithmetic.DEC, value: 0xffffffff, carry: true},
		{a: 10, b: 0xffff, op: arithmetic.DEC, value: 9},

		// multiplication
		{a: 6, b: 7, op: arithmetic.MUL, value: 42},
		{a: 0xffffffff, b: 2, op: arithmetic.MUL, value: 0xfffffffe, carry: true},
		{a: 0x10000, b: 0x10000, op: arithmetic.MUL, value: 0, carry: true, overflow: true},
		{a: 0x40000000, b: 2, op: arithmetic.MUL, value: 0x80000000, overflow: true},
		{a: 0x80000000, b: 0xffffffff, op: arithmetic.MUL, value: 0x80000000, overflow: true},

		// comparison produces flags but no result
		{a: 5, b: 5, op: arithmetic.CMP, value: 0},
		{a: 3, b: 5, op: arithmetic.CMP, value: 0, carry: true},
		{a: 0x80000000, b: 1, op: arithmetic.CMP, value: 0, overflow: true},

		// negation and absolute value
		{a: 1, op: arithmetic.NEG, value: 0xffffffff},
		{a: 0, op: arithmetic.NEG, value: 0},
		{a: 0x80000000, op: arithmetic.NEG, value: 0x80000000, overflow: true},
		{a: 0xfffffffb, op: arithmetic.ABS, value: 5},
		{a: 5, op: arithmetic.ABS, value: 5},
		{a: 0x80000000, op: arithmetic.ABS, value: 0x80000000, overflow: true},

		// fixed carry-in and borrow-in
		{a: 1, b: 2, op: arithmetic.ADDC, value: 4},
		{a: 0xfffffffe, b: 1, op: arithmetic.ADDC, value: 0, carry: true},
		{a: 0x7ffffffe, b: 1, op: arithmetic.ADDC, value: 0x80000000, overflow: true},
		{a: 5, b: 3, op: arithmetic.SUBB, value: 1},
		{a: 3, b: 3, op: arithmetic.SUBB, value: 0xffffffff, carry: true},
		{a: 0x80000000, b: 0, op: arithmetic.SUBB, value: 0x7fffffff, overflow: true},

		// undefined operation codes
		{a: 0xffffffff, b: 0xffffffff, op: arithmetic.Op(10)},
		{a: 0x12345678, b: 1, op: arithmetic.Op(15)},
	}

	for i, v := range vectors {
		r := arithmetic.Evaluate(v.a, v.b, v.op)
		test.ExpectEquality(t, r.Value, v.value, i, v.op)
		test.ExpectEquality(t, r.Carry, v.carry, i, v.op)
		test.ExpectEquality(t, r.Overflow, v.overflow, i, v.op)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0x2600))
	for i := 0; i < 10000; i++ {
		a := rng.Uint32()
		b := rng.Uint32()
		sum := arithmetic.Evaluate(a, b, arithmetic.ADD)
		diff := arithmetic.Evaluate(sum.Value, b, arithmetic.SUB)
		if !test.ExpectEquality(t, diff.Value, a, a, b) {
			return
		}
	}
}

func TestAbsIsPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(0x2600))
	for i := 0; i < 10000; i++ {
		a := rng.Uint32()
		if a == 0x80000000 {
			continue
		}
		r := arithmetic.Evaluate(a, 0, arithmetic.ABS)
		if !test.ExpectSuccess(t, int32(r.Value) >= 0, a) {
			return
		}
		test.ExpectFailure(t, r.Overflow, a)
	}
}

func TestMultiplyAgreesWithSigned(t *testing.T) {
	rng := rand.New(rand.NewSource(0x2600))
	for i := 0; i < 10000; i++ {
		a := rng.Uint32()
		b := rng.Uint32() >> (rng.Intn(32))
		r := arithmetic.Evaluate(a, b, arithmetic.MUL)

		p := int64(int32(a)) * int64(int32(b))
		test.ExpectEquality(t, r.Value, uint32(p), a, b)
		test.ExpectEquality(t, r.Overflow, p != int64(int32(p)), a, b)
	}
}

func TestOpStrings(t *testing.T) {
	test.ExpectEquality(t, arithmetic.ADD.String(), "ADD")
	test.ExpectEquality(t, arithmetic.SUBB.String(), "SUBB")
	test.ExpectEquality(t, arithmetic.Op(12).String(), "undefined")
	test.ExpectSuccess(t, arithmetic.SUBB.Defined())
	test.ExpectFailure(t, arithmetic.Op(10).Defined())
}
