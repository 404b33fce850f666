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

// Package flags defines the FlagSet produced by the ALU bank and the flag
// synthesizer that derives it.
//
// Flags are recomputed for every operation. There is no flag register that
// persists from one operation to the next.
package flags

import (
	"strings"
)

// Path selects which unit of the ALU bank is published.
type Path uint8

// List of valid Path values.
const (
	Arithmetic Path = iota
	Logic
)

func (p Path) String() string {
	switch p {
	case Arithmetic:
		return "arithmetic"
	case Logic:
		return "logic"
	}
	return "unknown"
}

// FlagSet is the status information accompanying a published result.
type FlagSet struct {
	Zero     bool
	Sign     bool
	Carry    bool
	Overflow bool
}

// bit positions in the packed form of the FlagSet
const (
	zeroBit     = 0x01
	signBit     = 0x02
	overflowBit = 0x04
	carryBit    = 0x08
)

// Value packs the FlagSet into four bits, ordered {Carry, Overflow, Sign,
// Zero} with the carry in the most significant position.
func (f FlagSet) Value() uint8 {
	var v uint8
	if f.Carry {
		v |= carryBit
	}
	if f.Overflow {
		v |= overflowBit
	}
	if f.Sign {
		v |= signBit
	}
	if f.Zero {
		v |= zeroBit
	}
	return v
}

// FromValue unpacks the four bit form of the FlagSet. Bits above the fourth
// are ignored.
func (f *FlagSet) FromValue(v uint8) {
	f.Carry = v&carryBit == carryBit
	f.Overflow = v&overflowBit == overflowBit
	f.Sign = v&signBit == signBit
	f.Zero = v&zeroBit == zeroBit
}

// Reset all flags to false.
func (f *FlagSet) Reset() {
	*f = FlagSet{}
}

// String returns the flags in the same order as the packed value. Upper case
// indicates a set flag.
func (f FlagSet) String() string {
	s := strings.Builder{}
	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}
	flag(f.Carry, 'C')
	flag(f.Overflow, 'V')
	flag(f.Sign, 'S')
	flag(f.Zero, 'Z')
	return s.String()
}

// Unit is the carry and overflow output of one unit of the ALU bank.
type Unit struct {
	Carry    bool
	Overflow bool
}

// Synthesize the FlagSet for the published result. Zero and sign come from
// the result itself. Carry and overflow come from whichever unit the path
// selects.
func Synthesize(result uint32, arithmetic Unit, logic Unit, path Path) FlagSet {
	f := FlagSet{
		Zero: result == 0,
		Sign: result&0x80000000 == 0x80000000,
	}

	if path == Logic {
		f.Carry = logic.Carry
		f.Overflow = logic.Overflow
	} else {
		f.Carry = arithmetic.Carry
		f.Overflow = arithmetic.Overflow
	}

	return f
}
