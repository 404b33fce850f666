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

package modalflag

import (
	"fmt"
	"strconv"
)

// wordValue implements the flag.Value interface for 32 bit words. Values
// can be given in any base accepted by strconv.ParseUint with a base of zero
// and are printed in hexadecimal.
type wordValue uint32

func (w *wordValue) String() string {
	return fmt.Sprintf("0x%08x", uint32(*w))
}

func (w *wordValue) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return fmt.Errorf("not a 32 bit word: %s", s)
	}
	*w = wordValue(v)
	return nil
}

// AddWord flag for next call to Parse(). The flag accepts decimal, hex (0x),
// octal (0o) and binary (0b) values.
func (md *Modes) AddWord(name string, value uint32, usage string) *uint32 {
	w := new(uint32)
	*w = value
	md.flags.Var((*wordValue)(w), name, usage)
	return w
}
