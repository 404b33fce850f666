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

package vectors

import (
	"github.com/jetsetilly/datapath/hardware/crc"
)

var table [256]uint32

func init() {
	for i := range table {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&0x01 == 0x01 {
				c = (c >> 1) ^ crc.Polynomial
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
}

// Reference returns the CRC32 of the four bytes of word, least significant
// byte first.
func Reference(word uint32) uint32 {
	c := uint32(crc.Initial)
	for i := 0; i < 4; i++ {
		b := uint8(word >> (8 * i))
		c = (c >> 8) ^ table[uint8(c)^b]
	}
	return ^c
}

// Default is the list of words used when no other list is given.
var Default = []uint32{
	0x00000000,
	0xffffffff,
	0x12345678,
	0xdeadbeef,
	0xaaaaaaaa,
	0x55555555,
}
