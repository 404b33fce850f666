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
	"github.com/jetsetilly/datapath/hardware/alu/flags"
	"github.com/jetsetilly/datapath/hardware/alu/logic"
	"github.com/jetsetilly/datapath/logger"
)

// State of the bank controller.
type State int

// List of valid State values.
const (
	Idle State = iota
	Execute
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Execute:
		return "Execute"
	case Complete:
		return "Complete"
	}
	return "unknown"
}

// Pins are the inputs to the bank. They are sampled by Step() and hold their
// value until changed by the driver.
type Pins struct {
	A      uint32
	B      uint32
	Opcode Opcode
	Path   flags.Path
	Enable bool
}

// Bank is the ALU bank controller.
type Bank struct {
	perm logger.Permission

	// In is written by the driver before calling Step()
	In Pins

	state State

	// register stage latched when leaving Idle
	a      uint32
	b      uint32
	opcode Opcode
	path   flags.Path

	// combinational outputs of the two units, evaluated on every tick from
	// the register stage
	arith arithmetic.Result
	logic logic.Result

	// registered outputs
	result uint32
	flags  flags.FlagSet
	valid  bool
}

// NewBank is the preferred method of initialisation for the Bank type. The
// Permission argument controls logging and can be nil.
func NewBank(perm logger.Permission) *Bank {
	bnk := &Bank{perm: perm}
	bnk.Reset()
	return bnk
}

func (bnk *Bank) String() string {
	return fmt.Sprintf("alu: %s op=%s path=%s result=0x%08x flags=%s valid=%v",
		bnk.state, bnk.opcode, bnk.path, bnk.result, bnk.flags, bnk.valid)
}

// Reset the bank. All registers are cleared and the bank is returned to the
// Idle state. Any in-flight operation is discarded. Input pins are not
// affected.
func (bnk *Bank) Reset() {
	bnk.state = Idle
	bnk.a = 0
	bnk.b = 0
	bnk.opcode = 0
	bnk.path = flags.Arithmetic
	bnk.arith = arithmetic.Result{}
	bnk.logic = logic.Result{}
	bnk.result = 0
	bnk.flags.Reset()
	bnk.valid = false
}

// Step the bank forward one tick.
func (bnk *Bank) Step() {
	if bnk.In.Enable && bnk.state != Idle {
		logger.Logf(bnk.perm, "alu", "enable ignored while %s", bnk.state)
	}

	switch bnk.state {
	case Idle:
		bnk.valid = false
		if bnk.In.Enable {
			bnk.a = bnk.In.A
			bnk.b = bnk.In.B
			bnk.opcode = bnk.In.Opcode & OpcodeMask
			bnk.path = bnk.In.Path & 0x01
			bnk.state = Execute

			if f := bnk.opcode.Family(); f != FamilyArithmetic && f != FamilyLogic {
				logger.Logf(bnk.perm, "alu", "reserved family in opcode %s", bnk.opcode)
			}
		}

	case Execute:
		bnk.evaluate()
		bnk.result = bnk.selected()
		bnk.flags = flags.Synthesize(bnk.result,
			flags.Unit{Carry: bnk.arith.Carry, Overflow: bnk.arith.Overflow},
			flags.Unit{Carry: bnk.logic.Carry},
			bnk.path)
		bnk.valid = true
		bnk.state = Complete

	case Complete:
		bnk.valid = false
		bnk.state = Idle
	}

	// both units see the register stage on every tick, whatever the state
	bnk.evaluate()
}

func (bnk *Bank) evaluate() {
	code := bnk.opcode.Code()
	bnk.arith = arithmetic.Evaluate(bnk.a, bnk.b, arithmetic.Op(code))
	bnk.logic = logic.Evaluate(bnk.a, bnk.b, logic.Op(code))
}

func (bnk *Bank) selected() uint32 {
	if bnk.path == flags.Logic {
		return bnk.logic.Value
	}
	return bnk.arith.Value
}

// State returns the current state of the controller.
func (bnk *Bank) State() State {
	return bnk.state
}

// Busy is true whenever the controller is not Idle.
func (bnk *Bank) Busy() bool {
	return bnk.state != Idle
}

// Valid is true for the single tick following the publication of a result.
func (bnk *Bank) Valid() bool {
	return bnk.valid
}

// Result returns the most recently published result.
func (bnk *Bank) Result() uint32 {
	return bnk.result
}

// Flags returns the flags accompanying the most recently published result.
func (bnk *Bank) Flags() flags.FlagSet {
	return bnk.flags
}

// Latched returns the contents of the register stage.
func (bnk *Bank) Latched() (a uint32, b uint32, opcode Opcode, path flags.Path) {
	return bnk.a, bnk.b, bnk.opcode, bnk.path
}

// Units returns the current combinational output of both units.
func (bnk *Bank) Units() (arithmetic.Result, logic.Result) {
	return bnk.arith, bnk.logic
}
