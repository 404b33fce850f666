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

package hardware

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/datapath/hardware/alu"
	"github.com/jetsetilly/datapath/hardware/crc"
	"github.com/jetsetilly/datapath/hardware/hamming"
	"github.com/jetsetilly/datapath/logger"
	"github.com/jetsetilly/datapath/trace"
)

// Datapath is the main container for the components of the datapath.
type Datapath struct {
	Prefs *Preferences

	ALU     *alu.Bank
	CRC     *crc.Engine
	Hamming *hamming.Decoder

	// number of ticks since the last reset
	ticks int

	logging bool

	tracer   trace.Sampler
	recorder *trace.Recorder

	// reused by sample()
	values []uint32
}

// NewDatapath creates a new Datapath and the three components. If the
// prefs argument is nil then a default set of preferences is used.
func NewDatapath(prefs *Preferences) (*Datapath, error) {
	if prefs == nil {
		var err error
		prefs, err = NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	dp := &Datapath{
		Prefs:   prefs,
		logging: true,
		values:  make([]uint32, len(traceSignals)),
	}

	dp.ALU = alu.NewBank(dp)
	dp.CRC = crc.NewEngine(dp)
	dp.Hamming = hamming.NewDecoder(dp)

	return dp, nil
}

// AllowLogging implements the logger.Permission interface.
func (dp *Datapath) AllowLogging() bool {
	return dp.logging
}

// SetLogging turns logging on or off for the datapath and every component.
func (dp *Datapath) SetLogging(on bool) {
	dp.logging = on
}

func (dp *Datapath) String() string {
	return fmt.Sprintf("tick %d\n%s\n%s\n%s", dp.ticks, dp.ALU, dp.CRC, dp.Hamming)
}

// Reset every component. Input pins are released and the tick counter is
// set to zero.
func (dp *Datapath) Reset() {
	dp.ALU.In = alu.Pins{}
	dp.CRC.In = crc.Pins{}
	dp.Hamming.In = hamming.Pins{}
	dp.ALU.Reset()
	dp.CRC.Reset()
	dp.Hamming.Reset()
	dp.ticks = 0
	logger.Log(dp, "datapath", "reset")
}

// Step every component forward one tick. Components do not see each
// other's outputs during a tick. Connections between components are made by
// the driver between calls to Step().
func (dp *Datapath) Step() {
	dp.ALU.Step()
	dp.CRC.Step()
	dp.Hamming.Step()
	dp.ticks++

	if dp.tracer != nil {
		dp.tracer.Sample(dp.ticks, dp.sample())
	}
}

// Ticks returns the number of ticks since the last reset.
func (dp *Datapath) Ticks() int {
	return dp.ticks
}

// AttachTracer adds a Sampler to the datapath. The Sampler will receive a
// sample of every signal in Signals() after every tick. A nil argument
// removes the current Sampler.
func (dp *Datapath) AttachTracer(tracer trace.Sampler) {
	dp.tracer = tracer
}

// Recorder returns the trace recorder created by Run() when the trace
// preference is set. Returns nil if no recorder has been created.
func (dp *Datapath) Recorder() *trace.Recorder {
	return dp.recorder
}

// Dump writes a Graphviz description of the register state of every
// component.
func (dp *Datapath) Dump(w io.Writer) {
	memviz.Map(w, dp.ALU, dp.CRC, dp.Hamming)
}
