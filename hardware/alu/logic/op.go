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

// Op is the four bit operation code for the logic unit.
type Op uint8

// List of valid Op values. Code 15 is undefined and evaluates to a zero
// result with the carry clear.
const (
	AND Op = iota
	OR
	XOR
	NOT
	NAND
	NOR
	XNOR
	SHL
	SHR
	SAR
	ROL
	ROR
	BSET
	BCLR
	BTGL
)

// NumOps is the number of defined logic operations.
const NumOps = 15

var opNames = [NumOps]string{
	"AND", "OR", "XOR", "NOT", "NAND", "NOR", "XNOR",
	"SHL", "SHR", "SAR", "ROL", "ROR",
	"BSET", "BCLR", "BTGL",
}

func (op Op) String() string {
	if op.Defined() {
		return opNames[op]
	}
	return "undefined"
}

// Defined returns true if the operation code represents a defined operation.
func (op Op) Defined() bool {
	return op < NumOps
}

// Shifting returns true if the operation can produce a carry.
func (op Op) Shifting() bool {
	return op >= SHL && op <= ROR
}
