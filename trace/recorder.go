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
	"strings"

	"github.com/jetsetilly/datapath/curated"
)

// list of curated error patterns returned by the trace package.
const (
	BadSignal = "trace: bad signal: %v"
	NoSamples = "trace: no samples recorded"
	WriteFail = "trace: %s: %v"
)

// Signal describes one traced value.
type Signal struct {
	Name string

	// number of bits in the signal. between 1 and 32 inclusive
	Width int
}

func (sig Signal) mask() uint32 {
	if sig.Width >= 32 {
		return 0xffffffff
	}
	return uint32(1)<<sig.Width - 1
}

// split name into scope and local name
func (sig Signal) scope() (string, string) {
	if i := strings.LastIndexByte(sig.Name, '.'); i > 0 {
		return sig.Name[:i], sig.Name[i+1:]
	}
	return "", sig.Name
}

// Sampler is implemented by any type that can receive one sample of every
// signal per tick. The values slice is indexed in the same order as the
// signals the Sampler was created with and is not retained.
type Sampler interface {
	Sample(tick int, values []uint32)
}

// Recorder keeps every sample in memory.
type Recorder struct {
	signals []Signal
	ticks   []int
	samples [][]uint32
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. Signal names must be unique and contain no whitespace.
func NewRecorder(signals []Signal) (*Recorder, error) {
	if len(signals) == 0 {
		return nil, curated.Errorf(BadSignal, "no signals")
	}

	names := make(map[string]bool)
	for _, sig := range signals {
		if sig.Name == "" || strings.ContainsAny(sig.Name, " \t\n") {
			return nil, curated.Errorf(BadSignal, fmt.Sprintf("%q", sig.Name))
		}
		if sig.Width < 1 || sig.Width > 32 {
			return nil, curated.Errorf(BadSignal, fmt.Sprintf("%s has width %d", sig.Name, sig.Width))
		}
		if names[sig.Name] {
			return nil, curated.Errorf(BadSignal, fmt.Sprintf("%s is duplicated", sig.Name))
		}
		names[sig.Name] = true
	}

	rec := &Recorder{
		signals: make([]Signal, len(signals)),
	}
	copy(rec.signals, signals)

	return rec, nil
}

// Sample implements the Sampler interface. Values are masked to the width of
// the signal. Missing values are recorded as zero and extra values are
// ignored.
func (rec *Recorder) Sample(tick int, values []uint32) {
	s := make([]uint32, len(rec.signals))
	for i, sig := range rec.signals {
		if i < len(values) {
			s[i] = values[i] & sig.mask()
		}
	}
	rec.ticks = append(rec.ticks, tick)
	rec.samples = append(rec.samples, s)
}

// Signals returns a copy of the signal list.
func (rec *Recorder) Signals() []Signal {
	s := make([]Signal, len(rec.signals))
	copy(s, rec.signals)
	return s
}

// Len returns the number of samples recorded.
func (rec *Recorder) Len() int {
	return len(rec.samples)
}

// Column returns every recorded value of the named signal.
func (rec *Recorder) Column(name string) ([]uint32, bool) {
	for i, sig := range rec.signals {
		if sig.Name == name {
			c := make([]uint32, len(rec.samples))
			for j, s := range rec.samples {
				c[j] = s[i]
			}
			return c, true
		}
	}
	return nil, false
}

// Ticks returns the tick number of every sample.
func (rec *Recorder) Ticks() []int {
	t := make([]int, len(rec.ticks))
	copy(t, rec.ticks)
	return t
}

// Clear all samples. The signal list is kept.
func (rec *Recorder) Clear() {
	rec.ticks = rec.ticks[:0]
	rec.samples = rec.samples[:0]
}
