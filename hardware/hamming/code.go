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

package hamming

import "math/bits"

// DataBits is the number of payload bits carried by a codeword.
const DataBits = 26

// DataMask is the mask of meaningful bits in a payload.
const DataMask = 1<<DataBits - 1

// Positional parity group masks. Bit i of a mask is set if position i+1 is a
// member of the group.
const (
	MaskP1  = 0x55555555
	MaskP2  = 0x66666666
	MaskP4  = 0x78787878
	MaskP8  = 0x7f807f80
	MaskP16 = 0x7fff8000
)

// the overall parity bit is position 32
const overallBit = 31

var groupMasks = [5]uint32{MaskP1, MaskP2, MaskP4, MaskP8, MaskP16}

// dataIndex is the container bit holding each data bit, in data bit order
var dataIndex [DataBits]uint

func init() {
	i := 0
	for p := uint(1); p < 32; p++ {
		// skip powers of two
		if p&(p-1) == 0 {
			continue
		}
		dataIndex[i] = p - 1
		i++
	}
}

// DataPositions returns the one-indexed codeword positions of the data bits
// in data bit order.
func DataPositions() []int {
	p := make([]int, DataBits)
	for i, b := range dataIndex {
		p[i] = int(b) + 1
	}
	return p
}

func parity(v uint32) uint8 {
	return uint8(bits.OnesCount32(v) & 0x01)
}

// Syndrome is the six bit parity check result {P32, P16, P8, P4, P2, P1}.
type Syndrome uint8

// compute the syndrome of a codeword
func syndromeOf(cw uint32) Syndrome {
	var s Syndrome
	for k, m := range groupMasks {
		s |= Syndrome(parity(cw&m)) << k
	}
	s |= Syndrome(parity(cw)) << 5
	return s
}

// Position returns the error position encoded in the low five bits of the
// syndrome. Zero means no position.
func (s Syndrome) Position() int {
	return int(s & 0x1f)
}

// Overall returns the state of the overall parity check.
func (s Syndrome) Overall() bool {
	return s&0x20 == 0x20
}

// Encode the low 26 bits of payload as a codeword. Higher bits are ignored.
func Encode(payload uint32) uint32 {
	var cw uint32

	for i, b := range dataIndex {
		cw |= ((payload >> i) & 0x01) << b
	}

	// the parity bit for group k is at position 2^k, which is a member of
	// group k and no other
	for k, m := range groupMasks {
		if parity(cw&m) == 1 {
			cw |= uint32(1) << (uint(1)<<k - 1)
		}
	}

	if parity(cw) == 1 {
		cw |= uint32(1) << overallBit
	}

	return cw
}

// Extract reads the data bits of a codeword without any error checking.
func Extract(cw uint32) uint32 {
	var payload uint32
	for i, b := range dataIndex {
		payload |= ((cw >> b) & 0x01) << i
	}
	return payload
}
