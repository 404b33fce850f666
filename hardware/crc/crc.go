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

package crc

import (
	"fmt"

	"github.com/jetsetilly/datapath/logger"
)

// Polynomial is the reflected IEEE 802.3 generator polynomial.
const Polynomial = 0xedb88320

// Initial is the value of the accumulator before the first bit is processed.
// The same value is XORed with the accumulator to produce the checksum.
const Initial = 0xffffffff

// the number of bytes processed for every accepted word
const wordBytes = 4

// State of the engine.
type State int

// List of valid State values.
const (
	Idle State = iota
	Processing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Processing:
		return "Processing"
	case Done:
		return "Done"
	}
	return "unknown"
}

// Pins are the inputs to the engine. They are sampled by Step() and hold
// their value until changed by the driver.
type Pins struct {
	Data      uint32
	Start     bool
	DataValid bool
}

// Engine is the bit-serial CRC32 engine.
type Engine struct {
	perm logger.Permission

	// In is written by the driver before calling Step()
	In Pins

	state State

	data    uint32
	acc     uint32
	byteIdx int
	bitIdx  int

	// the byte currently being shifted through the accumulator. loaded is
	// false when the next Processing tick is a byte-load tick
	current uint8
	loaded  bool

	out  uint32
	done bool
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The Permission argument controls logging and can be nil.
func NewEngine(perm logger.Permission) *Engine {
	eng := &Engine{perm: perm}
	eng.Reset()
	return eng
}

func (eng *Engine) String() string {
	return fmt.Sprintf("crc: %s byte=%d bit=%d acc=0x%08x out=0x%08x done=%v",
		eng.state, eng.byteIdx, eng.bitIdx, eng.acc, eng.out, eng.done)
}

// Reset the engine to the Idle state. The accumulator is set to Initial and
// every other register is cleared. Input pins are not affected.
func (eng *Engine) Reset() {
	eng.state = Idle
	eng.data = 0
	eng.acc = Initial
	eng.byteIdx = 0
	eng.bitIdx = 0
	eng.current = 0
	eng.loaded = false
	eng.out = 0
	eng.done = false
}

// Step the engine forward one tick.
func (eng *Engine) Step() {
	switch eng.state {
	case Idle:
		eng.done = false
		if eng.In.Start && eng.In.DataValid {
			eng.data = eng.In.Data
			eng.acc = Initial
			eng.byteIdx = 0
			eng.bitIdx = 0
			eng.loaded = false
			eng.state = Processing
		}

	case Processing:
		if eng.In.Start {
			logger.Logf(eng.perm, "crc", "start ignored while %s", eng.state)
		}

		if !eng.loaded {
			eng.current = uint8(eng.data >> (8 * eng.byteIdx))
			eng.bitIdx = 0
			eng.loaded = true
			break // switch
		}

		bit := uint32(eng.current>>eng.bitIdx) & 0x01
		if (eng.acc^bit)&0x01 == 0x01 {
			eng.acc = (eng.acc >> 1) ^ Polynomial
		} else {
			eng.acc >>= 1
		}

		eng.bitIdx++
		if eng.bitIdx == 8 {
			eng.loaded = false
			eng.byteIdx++
			if eng.byteIdx == wordBytes {
				eng.state = Done
			}
		}

	case Done:
		eng.out = ^eng.acc
		eng.done = true
		eng.state = Idle
		logger.Logf(eng.perm, "crc", "checksum of 0x%08x is 0x%08x", eng.data, eng.out)
	}
}

// State returns the current state of the engine.
func (eng *Engine) State() State {
	return eng.state
}

// Ready is true when the engine can accept a new word.
func (eng *Engine) Ready() bool {
	return eng.state == Idle
}

// Done is true for the single tick following the publication of a checksum.
func (eng *Engine) Done() bool {
	return eng.done
}

// Checksum returns the most recently published checksum.
func (eng *Engine) Checksum() uint32 {
	return eng.out
}

// Accumulator returns the working value of the checksum. It is not
// complemented.
func (eng *Engine) Accumulator() uint32 {
	return eng.acc
}

// Position returns the byte and bit currently being processed.
func (eng *Engine) Position() (byteIdx int, bitIdx int) {
	return eng.byteIdx, eng.bitIdx
}
