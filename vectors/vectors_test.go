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

package vectors_test

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math/rand"
	"strings"
	"testing"

	"github.com/jetsetilly/datapath/curated"
	"github.com/jetsetilly/datapath/hardware/crc"
	"github.com/jetsetilly/datapath/hardware/hamming"
	"github.com/jetsetilly/datapath/test"
	"github.com/jetsetilly/datapath/vectors"
)

func TestReference(t *testing.T) {
	test.ExpectEquality(t, vectors.Reference(0x00000000), 0x2144df1c)
	test.ExpectEquality(t, vectors.Reference(0xffffffff), 0xffffffff)
	test.ExpectEquality(t, vectors.Reference(0x12345678), 0xaf6d87d2)
	test.ExpectEquality(t, vectors.Reference(0xdeadbeef), 0x1a5a601f)

	rng := rand.New(rand.NewSource(0x2600))
	b := make([]byte, 4)
	for i := 0; i < 1000; i++ {
		w := rng.Uint32()
		binary.LittleEndian.PutUint32(b, w)
		if !test.ExpectEquality(t, vectors.Reference(w), crc32.ChecksumIEEE(b), w) {
			return
		}
	}
}

func TestAgainstEngine(t *testing.T) {
	eng := crc.NewEngine(nil)

	for _, w := range vectors.Default {
		eng.In = crc.Pins{Data: w, Start: true, DataValid: true}
		eng.Step()
		eng.In = crc.Pins{}
		for !eng.Done() {
			eng.Step()
		}
		test.ExpectEquality(t, eng.Checksum(), vectors.Reference(w), w)
	}
}

func TestWriteReport(t *testing.T) {
	cmp := &test.CompareWriter{}
	test.DemandSuccess(t, vectors.WriteReport(cmp, []uint32{0x12345678}))

	expected := fmt.Sprintf("Test 1:\n"+
		"  Input:    0x12345678\n"+
		"  CRC32:    0xAF6D87D2\n"+
		"  Hamming:  0x%08X\n"+
		"  Binary:   00010010 00110100 01010110 01111000 \n\n", hamming.Encode(0xaf6d87d2))

	if !cmp.Compare(expected) {
		t.Errorf("unexpected report:\n%s", cmp.String())
	}
}

func TestWriteTestbench(t *testing.T) {
	cmp := &test.CompareWriter{}
	test.DemandSuccess(t, vectors.WriteTestbench(cmp, []uint32{0x12345678, 0x00000000}))
	test.ExpectSuccess(t, cmp.Compare(
		"calculate_crc(32'h12345678, 32'hAF6D87D2);\n"+
			"calculate_crc(32'h00000000, 32'h2144DF1C);\n"))
}

func TestWrite(t *testing.T) {
	cmp := &test.CompareWriter{}
	test.DemandSuccess(t, vectors.Write(cmp, vectors.Default))

	s := cmp.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "// Test vectors for Verilog testbench\n"))
	test.ExpectEquality(t, strings.Count(s, "calculate_crc("), len(vectors.Default))
	test.ExpectSuccess(t, strings.Contains(s, "Test 6:\n  Input:    0x55555555\n"))
	test.ExpectSuccess(t, strings.Contains(s, "\n// Verilog testbench task calls:\n"))
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteFail(t *testing.T) {
	err := vectors.Write(failWriter{}, vectors.Default)
	test.ExpectSuccess(t, curated.Is(err, vectors.WriteFail))
	test.ExpectEquality(t, err.Error(), "vectors: disk full")
}
