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

package trace

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/datapath/curated"
)

// one tick of the datapath is one unit of VCD time
const vcdTimescale = "1ns"

// VCD identifier codes are drawn from the printable ASCII range
const (
	vcdIDFirst = '!'
	vcdIDRange = '~' - '!' + 1
)

func vcdIdentifier(i int) string {
	var s strings.Builder
	for {
		s.WriteByte(byte(vcdIDFirst + i%vcdIDRange))
		i /= vcdIDRange
		if i == 0 {
			break
		}
		i--
	}
	return s.String()
}

func vcdValue(sig Signal, v uint32, id string) string {
	if sig.Width == 1 {
		return fmt.Sprintf("%d%s\n", v&0x01, id)
	}
	return fmt.Sprintf("b%s %s\n", strconv.FormatUint(uint64(v), 2), id)
}

// WriteVCD writes the recording as a Value Change Dump. Only values that
// differ from the previous sample are written after the initial dump.
func (rec *Recorder) WriteVCD(w io.Writer) error {
	if len(rec.samples) == 0 {
		return curated.Errorf(NoSamples)
	}

	ids := make([]string, len(rec.signals))
	for i := range rec.signals {
		ids[i] = vcdIdentifier(i)
	}

	var s strings.Builder

	s.WriteString("$version datapath trace $end\n")
	s.WriteString(fmt.Sprintf("$timescale %s $end\n", vcdTimescale))
	s.WriteString("$scope module datapath $end\n")

	scope := ""
	for i, sig := range rec.signals {
		sc, name := sig.scope()
		if sc != scope {
			if scope != "" {
				s.WriteString("$upscope $end\n")
			}
			if sc != "" {
				s.WriteString(fmt.Sprintf("$scope module %s $end\n", sc))
			}
			scope = sc
		}
		s.WriteString(fmt.Sprintf("$var wire %d %s %s $end\n", sig.Width, ids[i], name))
	}
	if scope != "" {
		s.WriteString("$upscope $end\n")
	}
	s.WriteString("$upscope $end\n")
	s.WriteString("$enddefinitions $end\n")

	s.WriteString(fmt.Sprintf("#%d\n$dumpvars\n", rec.ticks[0]))
	for i, sig := range rec.signals {
		s.WriteString(vcdValue(sig, rec.samples[0][i], ids[i]))
	}
	s.WriteString("$end\n")

	for j := 1; j < len(rec.samples); j++ {
		stamped := false
		for i, sig := range rec.signals {
			v := rec.samples[j][i]
			if v == rec.samples[j-1][i] {
				continue
			}
			if !stamped {
				s.WriteString(fmt.Sprintf("#%d\n", rec.ticks[j]))
				stamped = true
			}
			s.WriteString(vcdValue(sig, v, ids[i]))
		}
	}

	// final timestamp so that viewers show the width of the last sample
	s.WriteString(fmt.Sprintf("#%d\n", rec.ticks[len(rec.ticks)-1]+1))

	if _, err := io.WriteString(w, s.String()); err != nil {
		return curated.Errorf(WriteFail, "vcd", err)
	}

	return nil
}
