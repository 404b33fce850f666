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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/datapath/hardware"
	"github.com/jetsetilly/datapath/hardware/alu"
	"github.com/jetsetilly/datapath/hardware/alu/arithmetic"
	"github.com/jetsetilly/datapath/test"
)

func TestRunMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"run", "-a", "0x7fffffff", "-b", "1", "-op", "add"}), 0)

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "alu:      0x80000000"), s)
	test.ExpectSuccess(t, strings.Contains(s, "no error"), s)
	test.ExpectSuccess(t, strings.Contains(s, "ticks:    45 (alu 2, crc 38, hamming 5)"), s)
}

func TestDefaultMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"-a", "5", "-b", "3"}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "alu:      0x00000008"))
}

func TestCorruptRun(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"run", "-a", "1", "-corrupt", "0x0400"}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "corrected"))
}

func TestModeErrors(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"run", "-op", "FOO"}), exitModeError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "* error in RUN mode"))

	out.Reset()
	test.ExpectEquality(t, launch(&out, []string{"run", "-path", "sideways"}), exitModeError)

	out.Reset()
	test.ExpectEquality(t, launch(&out, []string{"run", "-prefs", "datapath.tickLimit::4"}), exitModeError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "did not complete within 4 ticks"))

	out.Reset()
	test.ExpectEquality(t, launch(&out, []string{"run", "unexpected"}), exitModeError)
}

func TestUnusedPreferences(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"run", "-prefs", "datapath.clock::10"}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "* unused preferences: datapath.clock::10"))
}

func TestVectorsMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"vectors", "-testbench", "0x12345678"}), 0)
	test.ExpectEquality(t, out.String(), "calculate_crc(32'h12345678, 32'hAF6D87D2);\n")

	out.Reset()
	test.ExpectEquality(t, launch(&out, []string{"vectors"}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "Test 6:"))

	out.Reset()
	test.ExpectEquality(t, launch(&out, []string{"vectors", "word"}), exitModeError)
}

func TestSoakMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"soak", "-n", "10", "-seed", "7"}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "seed 7: 30 runs"))
}

func TestTraceMode(t *testing.T) {
	dir := t.TempDir()
	vcd := filepath.Join(dir, "trace.vcd")
	wav := filepath.Join(dir, "trace.wav")
	png := filepath.Join(dir, "trace.png")

	var out strings.Builder
	test.DemandEquality(t, launch(&out, []string{"trace", "-vcd", vcd, "-wav", wav, "-png", png, "-a", "9"}), 0)

	for _, fn := range []string{vcd, wav, png} {
		st, err := os.Stat(fn)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, st.Size() > 0, fn)
	}

	b, err := os.ReadFile(vcd)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "$version datapath trace $end\n"))
}

func TestDumpMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"dump", "-run", "-a", "3"}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "digraph"))
}

func TestHelp(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"-help"}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "available sub-modes: RUN, VECTORS, SOAK, TRACE, MONITOR, DUMP, VERSION"))
}

func BenchmarkRun(b *testing.B) {
	dp, err := hardware.NewDatapath(nil)
	if err != nil {
		b.Fatal(err)
	}
	dp.SetLogging(false)

	req := hardware.Request{A: 0x12345678, B: 0x9abcdef0, Opcode: alu.ArithmeticOpcode(arithmetic.MUL)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req.A++
		if _, err := dp.Run(req, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func TestVersionMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(&out, []string{"version"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Datapath "))
}
