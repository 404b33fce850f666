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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/datapath/curated"
	"github.com/jetsetilly/datapath/hardware/hamming"
)

// WriteFail is the curated error pattern returned when output cannot be
// written.
const WriteFail = "vectors: %v"

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return curated.Errorf(WriteFail, err)
	}
	return nil
}

func binary(word uint32) string {
	var s strings.Builder
	for j := 31; j >= 0; j-- {
		s.WriteByte('0' + byte(word>>j&0x01))
		if j%8 == 0 {
			s.WriteByte(' ')
		}
	}
	return s.String()
}

// WriteReport writes a block for every word showing the input, the
// checksum, the Hamming codeword of the checksum and the input in binary.
// Tests are numbered from one.
func WriteReport(w io.Writer, words []uint32) error {
	var s strings.Builder
	for i, word := range words {
		c := Reference(word)
		s.WriteString(fmt.Sprintf("Test %d:\n", i+1))
		s.WriteString(fmt.Sprintf("  Input:    0x%08X\n", word))
		s.WriteString(fmt.Sprintf("  CRC32:    0x%08X\n", c))
		s.WriteString(fmt.Sprintf("  Hamming:  0x%08X\n", hamming.Encode(c)))
		s.WriteString(fmt.Sprintf("  Binary:   %s\n\n", binary(word)))
	}
	return write(w, s.String())
}

// WriteTestbench writes one Verilog task call for every word.
func WriteTestbench(w io.Writer, words []uint32) error {
	var s strings.Builder
	for _, word := range words {
		s.WriteString(fmt.Sprintf("calculate_crc(32'h%08X, 32'h%08X);\n", word, Reference(word)))
	}
	return write(w, s.String())
}

// Write a complete vector file.
func Write(w io.Writer, words []uint32) error {
	if err := write(w, "// Test vectors for Verilog testbench\n// Format: Input_Data, Expected_CRC32, Expected_Hamming\n\n"); err != nil {
		return err
	}
	if err := WriteReport(w, words); err != nil {
		return err
	}
	if err := write(w, "\n// Verilog testbench task calls:\n"); err != nil {
		return err
	}
	return WriteTestbench(w, words)
}
