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

import (
	"fmt"

	"github.com/jetsetilly/datapath/logger"
)

// State of the decoder.
type State int

// List of valid State values.
const (
	Idle State = iota
	CalcParity
	CheckError
	CorrectError
	ExtractData
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case CalcParity:
		return "CalcParity"
	case CheckError:
		return "CheckError"
	case CorrectError:
		return "CorrectError"
	case ExtractData:
		return "ExtractData"
	case Done:
		return "Done"
	}
	return "unknown"
}

// Pins are the inputs to the decoder. They are sampled by Step() and hold
// their value until changed by the driver.
type Pins struct {
	Codeword uint32
	Start    bool
}

// Status flags of the most recent decode. All flags are cleared when a new
// codeword is accepted.
type Status struct {
	SingleError bool
	DoubleError bool
	Corrected   bool

	// the single error was in the overall parity bit. SingleError is also
	// set but no correction is made because position 32 carries no data
	ParityBitError bool
}

func (st Status) String() string {
	switch {
	case st.DoubleError:
		return "double error"
	case st.ParityBitError:
		return "parity bit error"
	case st.Corrected:
		return "corrected"
	case st.SingleError:
		return "single error"
	}
	return "no error"
}

// Decoder is the Hamming(32,26) SECDED decoder.
type Decoder struct {
	perm logger.Permission

	// In is written by the driver before calling Step()
	In Pins

	state State

	// working copy of the latched codeword. corrected in place
	codeword uint32
	syndrome Syndrome
	status   Status

	data uint32
	done bool
}

// NewDecoder is the preferred method of initialisation for the Decoder
// type. The Permission argument controls logging and can be nil.
func NewDecoder(perm logger.Permission) *Decoder {
	dec := &Decoder{perm: perm}
	dec.Reset()
	return dec
}

func (dec *Decoder) String() string {
	return fmt.Sprintf("hamming: %s codeword=0x%08x syndrome=%06b data=0x%07x %s done=%v",
		dec.state, dec.codeword, uint8(dec.syndrome), dec.data, dec.status, dec.done)
}

// Reset the decoder to the Idle state and clear all registers. Input pins
// are not affected.
func (dec *Decoder) Reset() {
	dec.state = Idle
	dec.codeword = 0
	dec.syndrome = 0
	dec.status = Status{}
	dec.data = 0
	dec.done = false
}

// Step the decoder forward one tick.
func (dec *Decoder) Step() {
	if dec.In.Start && dec.state != Idle {
		logger.Logf(dec.perm, "hamming", "start ignored while %s", dec.state)
	}

	switch dec.state {
	case Idle:
		dec.done = false
		if dec.In.Start {
			dec.codeword = dec.In.Codeword
			dec.syndrome = 0
			dec.status = Status{}
			dec.state = CalcParity
		}

	case CalcParity:
		dec.syndrome = syndromeOf(dec.codeword)
		dec.state = CheckError

	case CheckError:
		pos := dec.syndrome.Position()
		switch {
		case dec.syndrome == 0:
			dec.state = ExtractData

		case dec.syndrome.Overall() && pos != 0:
			dec.status.SingleError = true
			dec.state = CorrectError

		case dec.syndrome.Overall():
			dec.status.SingleError = true
			dec.status.ParityBitError = true
			logger.Logf(dec.perm, "hamming", "overall parity bit in error in 0x%08x", dec.codeword)
			dec.state = ExtractData

		default:
			dec.status.DoubleError = true
			logger.Logf(dec.perm, "hamming", "double error detected in 0x%08x (syndrome %06b)", dec.codeword, uint8(dec.syndrome))
			dec.state = ExtractData
		}

	case CorrectError:
		pos := dec.syndrome.Position()
		dec.codeword ^= uint32(1) << (pos - 1)
		dec.status.Corrected = true
		logger.Logf(dec.perm, "hamming", "single error corrected at position %d", pos)
		dec.state = ExtractData

	case ExtractData:
		dec.data = Extract(dec.codeword)
		dec.state = Done

	case Done:
		dec.done = true
		dec.state = Idle
	}
}

// State returns the current state of the decoder.
func (dec *Decoder) State() State {
	return dec.state
}

// Ready is true when the decoder can accept a new codeword.
func (dec *Decoder) Ready() bool {
	return dec.state == Idle
}

// Done is true for the single tick following the completion of a decode.
func (dec *Decoder) Done() bool {
	return dec.done
}

// Data returns the 26 bit payload of the most recent decode. The payload is
// unreliable if the status reports a double error.
func (dec *Decoder) Data() uint32 {
	return dec.data
}

// Syndrome returns the syndrome of the most recent decode.
func (dec *Decoder) Syndrome() Syndrome {
	return dec.syndrome
}

// Status returns the error flags of the most recent decode.
func (dec *Decoder) Status() Status {
	return dec.status
}

// Codeword returns the working copy of the codeword, including any
// correction.
func (dec *Decoder) Codeword() uint32 {
	return dec.codeword
}
