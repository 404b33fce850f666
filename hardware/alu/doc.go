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

// Package alu implements the ALU bank controller. The bank owns an
// arithmetic unit and a logic unit (see the arithmetic and logic
// sub-packages) and publishes the result of one of them.
//
// The controller is a three state machine, advanced one tick at a time by
// the Step() function:
//
//	Idle -> Execute -> Complete -> Idle
//
// Operands, opcode and path are latched from the input pins on the tick that
// leaves Idle. Both units are evaluated every tick from the latched values.
// The path selects which result is published on the Execute tick, at which
// point the Valid output is asserted for exactly one tick.
//
// An enable while the bank is busy is dropped. There is no queue.
package alu
