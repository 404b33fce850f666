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
	"github.com/jetsetilly/datapath/curated"
	"github.com/jetsetilly/datapath/hardware/alu"
	"github.com/jetsetilly/datapath/hardware/alu/flags"
	"github.com/jetsetilly/datapath/hardware/crc"
	"github.com/jetsetilly/datapath/hardware/govern"
	"github.com/jetsetilly/datapath/hardware/hamming"
	"github.com/jetsetilly/datapath/logger"
	"github.com/jetsetilly/datapath/trace"
)

// list of curated error patterns returned by Run().
const (
	StageTimeout = "datapath: %s stage did not complete within %d ticks"
	RunHalted    = "datapath: run halted during %s stage"
)

// Request is the input to a chained run of the datapath.
type Request struct {
	A      uint32
	B      uint32
	Opcode alu.Opcode
	Path   flags.Path

	// bits of the codeword to flip before it is presented to the decoder.
	// used to exercise the error correction of the decoder
	Corrupt uint32
}

// List of stages in a chained run. Indexes Result.StageTicks.
const (
	StageALU = iota
	StageCRC
	StageHamming
	NumStages
)

var stageNames = [NumStages]string{"alu", "crc", "hamming"}

// Result is the output of a chained run of the datapath.
type Result struct {
	Value uint32
	Flags flags.FlagSet

	Checksum uint32

	// codeword as presented to the decoder, including any corruption
	Codeword uint32

	Data     uint32
	Syndrome hamming.Syndrome
	Status   hamming.Status

	// ticks taken by the whole run and by each stage
	Ticks      int
	StageTicks [NumStages]int
}

type stage struct {
	ready    func() bool
	start    func()
	release  func()
	complete func() bool
}

// Run a request through the ALU, the CRC engine and the Hamming decoder in
// turn.
//
// The continueCheck function is called before every tick. A return value of
// govern.Paused stops the datapath from being ticked without ending the run.
// govern.Ending halts the run with a RunHalted error. A nil continueCheck is
// the same as a function that always returns govern.Running.
func (dp *Datapath) Run(req Request, continueCheck func() (govern.State, error)) (Result, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	if dp.Prefs.Trace.Get().(bool) && dp.recorder == nil {
		rec, err := trace.NewRecorder(Signals())
		if err != nil {
			return Result{}, err
		}
		dp.recorder = rec
		dp.AttachTracer(rec)
	}

	var res Result
	startTicks := dp.ticks

	stages := [NumStages]stage{
		StageALU: {
			ready: func() bool { return !dp.ALU.Busy() },
			start: func() {
				dp.ALU.In = alu.Pins{A: req.A, B: req.B, Opcode: req.Opcode, Path: req.Path, Enable: true}
			},
			release:  func() { dp.ALU.In.Enable = false },
			complete: dp.ALU.Valid,
		},
		StageCRC: {
			ready: dp.CRC.Ready,
			start: func() {
				dp.CRC.In = crc.Pins{Data: res.Value, Start: true, DataValid: true}
			},
			release: func() {
				dp.CRC.In.Start = false
				dp.CRC.In.DataValid = false
			},
			complete: dp.CRC.Done,
		},
		StageHamming: {
			ready: dp.Hamming.Ready,
			start: func() {
				dp.Hamming.In = hamming.Pins{Codeword: res.Codeword, Start: true}
			},
			release:  func() { dp.Hamming.In.Start = false },
			complete: dp.Hamming.Done,
		},
	}

	for i, stg := range stages {
		ticks, err := dp.runStage(stageNames[i], stg, continueCheck)
		res.StageTicks[i] = ticks
		res.Ticks = dp.ticks - startTicks
		if err != nil {
			return res, err
		}

		switch i {
		case StageALU:
			res.Value = dp.ALU.Result()
			res.Flags = dp.ALU.Flags()
		case StageCRC:
			res.Checksum = dp.CRC.Checksum()
			res.Codeword = res.Checksum
			if dp.Prefs.encode() {
				res.Codeword = hamming.Encode(res.Checksum)
			}
			res.Codeword ^= req.Corrupt
		case StageHamming:
			res.Data = dp.Hamming.Data()
			res.Syndrome = dp.Hamming.Syndrome()
			res.Status = dp.Hamming.Status()
		}
	}

	return res, nil
}

// runStage pulses the stage as soon as it is ready and ticks the datapath
// until the stage reports completion. Returns the number of ticks taken.
func (dp *Datapath) runStage(name string, stg stage, continueCheck func() (govern.State, error)) (int, error) {
	limit := dp.Prefs.tickLimit()
	ticks := 0
	started := false

	for {
		state, err := continueCheck()
		if err != nil {
			return ticks, err
		}

		switch state {
		case govern.Running:
		case govern.Paused:
			continue // for loop
		case govern.Ending:
			return ticks, curated.Errorf(RunHalted, name)
		default:
			return ticks, curated.Errorf("datapath: unsupported run state (%d) in Run() function", state)
		}

		if ticks >= limit {
			return ticks, curated.Errorf(StageTimeout, name, limit)
		}

		pulse := !started && stg.ready()
		if pulse {
			stg.start()
		}

		dp.Step()
		ticks++

		if pulse {
			stg.release()
			started = true
		}

		if started && stg.complete() {
			logger.Logf(dp, "datapath", "%s stage complete in %d ticks", name, ticks)
			return ticks, nil
		}
	}
}
