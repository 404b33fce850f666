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

// Op is the four bit operation code for the arithmetic unit.
type Op uint8

// List of valid Op values. Codes 10 to 15 are undefined and evaluate to a
// zero result with both flags clear.
const (
	ADD Op = iota
	SUB
	INC
	DEC
	MUL
	CMP
	NEG
	ABS
	ADDC
	SUBB
)

// NumOps is the number of defined arithmetic operations.
const NumOps = 10

func (op Op) String() string {
	switch op {
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case INC:
		return "INC"
	case DEC:
		return "DEC"
	case MUL:
		return "MUL"
	case CMP:
		return "CMP"
	case NEG:
		return "NEG"
	case ABS:
		return "ABS"
	case ADDC:
		return "ADDC"
	case SUBB:
		return "SUBB"
	}
	return "undefined"
}

// Defined returns true if the operation code represents a defined operation.
func (op Op) Defined() bool {
	return op < NumOps
}
