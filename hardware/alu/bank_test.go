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

package alu_test

import (
	"testing"

	"github.com/jetsetilly/datapath/curated"
	"github.com/jetsetilly/datapath/hardware/alu"
	"github.com/jetsetilly/datapath/hardware/alu/arithmetic"
	"github.com/jetsetilly/datapath/hardware/alu/flags"
	"github.com/jetsetilly/datapath/hardware/alu/logic"
	"github.com/jetsetilly/datapath/logger"
	"github.com/jetsetilly/datapath/test"
)

// issue an operation and step the bank until the result is valid. returns
// the number of ticks taken
func execute(t *testing.T, bnk *alu.Bank, a, b uint32, op alu.Opcode, path flags.Path) int {
	t.Helper()

	bnk.In = alu.Pins{A: a, B: b, Opcode: op, Path: path, Enable: true}
	bnk.Step()
	bnk.In.Enable = false

	ticks := 1
	for !bnk.Valid() {
		bnk.Step()
		ticks++
		if ticks > 10 {
			t.Fatalf("alu bank did not complete")
		}
	}
	return ticks
}

func TestOpcode(t *testing.T) {
	op := alu.ArithmeticOpcode(arithmetic.SUBB)
	test.ExpectEquality(t, op, 0x09)
	test.ExpectEquality(t, op.Family(), alu.FamilyArithmetic)
	test.ExpectEquality(t, op.Code(), 9)
	test.ExpectEquality(t, op.String(), "SUBB (0x09)")

	op = alu.LogicOpcode(logic.BCLR)
	test.ExpectEquality(t, op, 0x1d)
	test.ExpectEquality(t, op.Family(), alu.FamilyLogic)
	test.ExpectEquality(t, op.Code(), 13)
	test.ExpectEquality(t, op.String(), "BCLR (0x1d)")

	op = alu.Opcode(0x25)
	test.ExpectEquality(t, op.Family(), alu.FamilyReserved2)
	test.ExpectEquality(t, op.Family().String(), "reserved")
}

func TestStateSequence(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)
	test.ExpectEquality(t, bnk.State(), alu.Idle)
	test.ExpectFailure(t, bnk.Busy())

	// nothing happens without enable
	bnk.Step()
	test.ExpectEquality(t, bnk.State(), alu.Idle)

	bnk.In = alu.Pins{A: 2, B: 3, Opcode: alu.ArithmeticOpcode(arithmetic.ADD), Enable: true}
	bnk.Step()
	bnk.In.Enable = false
	test.ExpectEquality(t, bnk.State(), alu.Execute)
	test.ExpectSuccess(t, bnk.Busy())
	test.ExpectFailure(t, bnk.Valid())

	bnk.Step()
	test.ExpectEquality(t, bnk.State(), alu.Complete)
	test.ExpectSuccess(t, bnk.Busy())
	test.ExpectSuccess(t, bnk.Valid())
	test.ExpectEquality(t, bnk.Result(), 5)

	bnk.Step()
	test.ExpectEquality(t, bnk.State(), alu.Idle)
	test.ExpectFailure(t, bnk.Busy())
	test.ExpectFailure(t, bnk.Valid())

	// the published result is held after valid is deasserted
	test.ExpectEquality(t, bnk.Result(), 5)
}

func TestOverflowToSign(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)
	ticks := execute(t, bnk, 0x7fffffff, 1, alu.ArithmeticOpcode(arithmetic.ADD), flags.Arithmetic)
	test.ExpectEquality(t, ticks, 2)
	test.ExpectEquality(t, bnk.Result(), 0x80000000)
	test.ExpectEquality(t, bnk.Flags(), flags.FlagSet{Carry: false, Overflow: true, Sign: true, Zero: false})
	test.ExpectEquality(t, bnk.Flags().Value(), 0x06)
}

func TestPathSelect(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)

	// code 7 is ABS in the arithmetic unit and SHL in the logic unit. the
	// path, not the family bits, decides which is published
	op := alu.ArithmeticOpcode(arithmetic.ABS)

	execute(t, bnk, 0xfffffff0, 4, op, flags.Arithmetic)
	test.ExpectEquality(t, bnk.Result(), 0x10)

	execute(t, bnk, 0xfffffff0, 4, op, flags.Logic)
	test.ExpectEquality(t, bnk.Result(), 0xffffff00)
	test.ExpectEquality(t, bnk.Flags(), flags.FlagSet{Sign: true, Carry: true})
}

func TestLogicNeverOverflows(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)

	// NEG of the most negative number overflows in the arithmetic unit.
	// the logic unit, publishing XNOR for the same code, does not
	execute(t, bnk, 0x80000000, 0, alu.LogicOpcode(logic.XNOR), flags.Logic)
	test.ExpectEquality(t, bnk.Result(), 0x7fffffff)
	test.ExpectFailure(t, bnk.Flags().Overflow)

	arith, lgc := bnk.Units()
	test.ExpectSuccess(t, arith.Overflow)
	test.ExpectFailure(t, lgc.Carry)
}

func TestEnableWhileBusy(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)

	bnk.In = alu.Pins{A: 10, B: 20, Opcode: alu.ArithmeticOpcode(arithmetic.ADD), Enable: true}
	bnk.Step()

	// new request while in flight. operands must not change
	bnk.In = alu.Pins{A: 1000, B: 2000, Opcode: alu.ArithmeticOpcode(arithmetic.SUB), Enable: true}
	bnk.Step()
	test.ExpectSuccess(t, bnk.Valid())
	test.ExpectEquality(t, bnk.Result(), 30)

	a, b, op, _ := bnk.Latched()
	test.ExpectEquality(t, a, 10)
	test.ExpectEquality(t, b, 20)
	test.ExpectEquality(t, op, alu.ArithmeticOpcode(arithmetic.ADD))

	// still held during Complete. ignored again
	bnk.Step()
	test.ExpectEquality(t, bnk.State(), alu.Idle)
	test.ExpectEquality(t, bnk.Result(), 30)

	// once idle the held enable starts the new request. result arrives on
	// the normal schedule
	bnk.Step()
	test.ExpectEquality(t, bnk.State(), alu.Execute)
	bnk.In.Enable = false
	bnk.Step()
	test.ExpectSuccess(t, bnk.Valid())
	test.ExpectEquality(t, bnk.Result(), 0xfffffc18)
}

func TestCompareZero(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)

	// comparison writes no result so the zero flag is always set
	execute(t, bnk, 3, 5, alu.ArithmeticOpcode(arithmetic.CMP), flags.Arithmetic)
	test.ExpectEquality(t, bnk.Result(), 0)
	test.ExpectEquality(t, bnk.Flags(), flags.FlagSet{Zero: true, Carry: true})
}

func TestReservedFamily(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)

	// both units still compute from the code bits
	execute(t, bnk, 6, 7, alu.Opcode(0x30|uint8(arithmetic.MUL)), flags.Arithmetic)
	test.ExpectEquality(t, bnk.Result(), 42)
}

func TestUndefinedOpcode(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)

	execute(t, bnk, 0xffffffff, 0xffffffff, alu.ArithmeticOpcode(arithmetic.Op(12)), flags.Arithmetic)
	test.ExpectEquality(t, bnk.Result(), 0)
	test.ExpectEquality(t, bnk.Flags(), flags.FlagSet{Zero: true})

	execute(t, bnk, 0xffffffff, 0xffffffff, alu.LogicOpcode(logic.Op(15)), flags.Logic)
	test.ExpectEquality(t, bnk.Result(), 0)
	test.ExpectEquality(t, bnk.Flags(), flags.FlagSet{Zero: true})
}

func TestReset(t *testing.T) {
	bnk := alu.NewBank(logger.Deny)

	bnk.In = alu.Pins{A: 1, B: 1, Opcode: alu.ArithmeticOpcode(arithmetic.ADD), Enable: true}
	bnk.Step()
	bnk.In.Enable = false
	test.ExpectSuccess(t, bnk.Busy())

	bnk.Reset()
	test.ExpectEquality(t, bnk.State(), alu.Idle)
	test.ExpectFailure(t, bnk.Valid())
	test.ExpectEquality(t, bnk.Result(), 0)
	test.ExpectEquality(t, bnk.Flags().Value(), 0)

	// the discarded operation never publishes
	bnk.Step()
	bnk.Step()
	test.ExpectFailure(t, bnk.Valid())
	test.ExpectEquality(t, bnk.Result(), 0)
}

func TestParseOpcode(t *testing.T) {
	op, path, err := alu.ParseOpcode("addc")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, op, alu.ArithmeticOpcode(arithmetic.ADDC))
	test.ExpectEquality(t, path, flags.Arithmetic)

	op, path, err = alu.ParseOpcode(" ROR ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, op, alu.LogicOpcode(logic.ROR))
	test.ExpectEquality(t, path, flags.Logic)

	op, path, err = alu.ParseOpcode("0x1e")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, op, alu.LogicOpcode(logic.BTGL))
	test.ExpectEquality(t, path, flags.Logic)

	op, path, err = alu.ParseOpcode("0x2f")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, op.Family(), alu.FamilyReserved2)
	test.ExpectEquality(t, path, flags.Arithmetic)

	_, _, err = alu.ParseOpcode("0x40")
	test.ExpectSuccess(t, curated.Is(err, alu.UnknownOpcode))

	_, _, err = alu.ParseOpcode("FOO")
	test.ExpectSuccess(t, curated.Is(err, alu.UnknownOpcode))
}
