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

package monitor

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jetsetilly/datapath/curated"
	"github.com/jetsetilly/datapath/hardware"
	"github.com/jetsetilly/datapath/hardware/alu"
	"github.com/jetsetilly/datapath/hardware/crc"
	"github.com/jetsetilly/datapath/hardware/hamming"
	"github.com/jetsetilly/datapath/monitor/easyterm"
)

// MonitorFail is the curated error pattern for input and output failures.
const MonitorFail = "monitor: %v"

// Monitor is an interactive stepper for the datapath.
type Monitor struct {
	dp     *hardware.Datapath
	input  *bufio.Reader
	output io.Writer

	// request used when the ALU is pulsed
	Req hardware.Request
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(dp *hardware.Datapath, input io.Reader, output io.Writer) *Monitor {
	return &Monitor{
		dp:     dp,
		input:  bufio.NewReader(input),
		output: output,
	}
}

func (mon *Monitor) print(s string, a ...interface{}) error {
	if _, err := fmt.Fprintf(mon.output, s, a...); err != nil {
		return curated.Errorf(MonitorFail, err)
	}
	return nil
}

func (mon *Monitor) state() error {
	return mon.print("%s\n\n", mon.dp)
}

// Run the monitor until the quit key is pressed or the input is exhausted.
func (mon *Monitor) Run() error {
	if err := mon.print("a b op: 0x%08x 0x%08x %s\n", mon.Req.A, mon.Req.B, mon.Req.Opcode); err != nil {
		return err
	}
	if err := mon.state(); err != nil {
		return err
	}

	for {
		key, err := mon.input.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf(MonitorFail, err)
		}

		switch key {
		case 'q', easyterm.KeyCtrlD:
			return nil

		case easyterm.KeySpace, easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
			mon.tick()

		case 'a':
			mon.dp.ALU.In = alu.Pins{
				A:      mon.Req.A,
				B:      mon.Req.B,
				Opcode: mon.Req.Opcode,
				Path:   mon.Req.Path,
				Enable: true,
			}
			mon.tick()

		case 'c':
			mon.dp.CRC.In = crc.Pins{Data: mon.dp.ALU.Result(), Start: true, DataValid: true}
			mon.tick()

		case 'h':
			cw := mon.dp.CRC.Checksum()
			if mon.dp.Prefs.Encode.Get().(bool) {
				cw = hamming.Encode(cw)
			}
			mon.dp.Hamming.In = hamming.Pins{Codeword: cw ^ mon.Req.Corrupt, Start: true}
			mon.tick()

		case 'r':
			mon.dp.Reset()
			if err := mon.print("reset\n"); err != nil {
				return err
			}

		default:
			continue // for loop
		}

		if err := mon.state(); err != nil {
			return err
		}
	}
}

// tick the datapath and release every pulsed pin
func (mon *Monitor) tick() {
	mon.dp.Step()
	mon.dp.ALU.In.Enable = false
	mon.dp.CRC.In.Start = false
	mon.dp.CRC.In.DataValid = false
	mon.dp.Hamming.In.Start = false
}
