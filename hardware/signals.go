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
	"github.com/jetsetilly/datapath/trace"
)

// every signal sampled by the datapath. the order must match sample()
var traceSignals = []trace.Signal{
	{Name: "alu.enable", Width: 1},
	{Name: "alu.busy", Width: 1},
	{Name: "alu.valid", Width: 1},
	{Name: "alu.state", Width: 2},
	{Name: "alu.result", Width: 32},
	{Name: "alu.flags", Width: 4},
	{Name: "crc.start", Width: 1},
	{Name: "crc.ready", Width: 1},
	{Name: "crc.done", Width: 1},
	{Name: "crc.state", Width: 2},
	{Name: "crc.checksum", Width: 32},
	{Name: "hamming.start", Width: 1},
	{Name: "hamming.ready", Width: 1},
	{Name: "hamming.done", Width: 1},
	{Name: "hamming.state", Width: 3},
	{Name: "hamming.syndrome", Width: 6},
	{Name: "hamming.data", Width: 26},
}

// Signals returns the list of signals sampled by the datapath after every
// tick. Suitable for passing to trace.NewRecorder().
func Signals() []trace.Signal {
	s := make([]trace.Signal, len(traceSignals))
	copy(s, traceSignals)
	return s
}

func bit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (dp *Datapath) sample() []uint32 {
	v := dp.values[:0]
	v = append(v,
		bit(dp.ALU.In.Enable),
		bit(dp.ALU.Busy()),
		bit(dp.ALU.Valid()),
		uint32(dp.ALU.State()),
		dp.ALU.Result(),
		uint32(dp.ALU.Flags().Value()),
		bit(dp.CRC.In.Start),
		bit(dp.CRC.Ready()),
		bit(dp.CRC.Done()),
		uint32(dp.CRC.State()),
		dp.CRC.Checksum(),
		bit(dp.Hamming.In.Start),
		bit(dp.Hamming.Ready()),
		bit(dp.Hamming.Done()),
		uint32(dp.Hamming.State()),
		uint32(dp.Hamming.Syndrome()),
		dp.Hamming.Data(),
	)
	return v
}
