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

package soak

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/jetsetilly/datapath/curated"
	"github.com/jetsetilly/datapath/hardware"
	"github.com/jetsetilly/datapath/hardware/alu"
	"github.com/jetsetilly/datapath/hardware/alu/arithmetic"
	"github.com/jetsetilly/datapath/hardware/alu/flags"
	"github.com/jetsetilly/datapath/hardware/alu/logic"
	"github.com/jetsetilly/datapath/hardware/hamming"
	"github.com/jetsetilly/datapath/logger"
	"github.com/jetsetilly/datapath/vectors"
)

// list of curated error patterns returned by the soak package.
const (
	PropertyFailed = "soak: %d of %d runs failed: %v"
	Failure        = "soak: run %d: %s: %s"
)

// the most failures that will be reported in the output
const maxReportedFailures = 10

// Config for a soak run.
type Config struct {
	// number of random requests. each request is run three times
	Iterations int

	// seed for the random number generator. zero means seed from the
	// current time
	Seed int64

	// preferences used by the datapath. nil means the default preferences
	Prefs *hardware.Preferences
}

// Report is the summary of a soak run.
type Report struct {
	Seed     int64
	Runs     int
	Ticks    int
	Failures int

	Corrected int
	Detected  int
}

func (r Report) String() string {
	return fmt.Sprintf("seed %d: %d runs, %d ticks, %d corrected, %d detected, %d failures",
		r.Seed, r.Runs, r.Ticks, r.Corrected, r.Detected, r.Failures)
}

type soak struct {
	rng    *rand.Rand
	dp     *hardware.Datapath
	encode bool
	report Report

	first  error
	output io.Writer
}

// Run the soak test as described by the Config. Progress and the summary
// are written to output. An error with the PropertyFailed pattern is
// returned if any run failed.
func Run(cfg Config, output io.Writer) (Report, error) {
	if output == nil {
		output = io.Discard
	}

	dp, err := hardware.NewDatapath(cfg.Prefs)
	if err != nil {
		return Report{}, err
	}

	// dropped requests and corrections are expected in large numbers
	dp.SetLogging(false)

	s := soak{
		dp:     dp,
		encode: dp.Prefs.Encode.Get().(bool),
		output: output,
	}

	s.report.Seed = cfg.Seed
	if s.report.Seed == 0 {
		s.report.Seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.report.Seed))

	logger.Logf(logger.Allow, "soak", "starting %d iterations with seed %d", cfg.Iterations, s.report.Seed)

	progress := cfg.Iterations / 10
	for i := 0; i < cfg.Iterations; i++ {
		if err := s.iteration(); err != nil {
			return s.report, err
		}
		if progress > 0 && (i+1)%progress == 0 {
			fmt.Fprintf(output, "%3d%%\r", (i+1)*100/cfg.Iterations)
		}
	}

	fmt.Fprintln(output, s.report)
	logger.Logf(logger.Allow, "soak", "%s", s.report)

	if s.report.Failures > 0 {
		return s.report, curated.Errorf(PropertyFailed, s.report.Failures, s.report.Runs, s.first)
	}

	return s.report, nil
}

func (s *soak) request() hardware.Request {
	req := hardware.Request{
		A:    s.rng.Uint32(),
		B:    s.rng.Uint32(),
		Path: flags.Path(s.rng.Intn(2)),
	}

	// bias towards the interesting shift amounts
	if s.rng.Intn(4) == 0 {
		req.B &= 0x1f
	}

	// opcodes are drawn from all 64 values so that reserved families and
	// undefined codes are exercised
	req.Opcode = alu.Opcode(s.rng.Intn(int(alu.OpcodeMask) + 1))

	return req
}

func (s *soak) fail(what string, detail string, args ...interface{}) {
	s.report.Failures++
	err := curated.Errorf(Failure, s.report.Runs, what, fmt.Sprintf(detail, args...))
	if s.first == nil {
		s.first = err
	}
	if s.report.Failures <= maxReportedFailures {
		fmt.Fprintln(s.output, err)
	}
}

func (s *soak) iteration() error {
	req := s.request()

	if err := s.check(req, 0); err != nil {
		return err
	}

	// single bit in the addressable positions 1 to 31
	p := s.rng.Intn(31)
	req.Corrupt = 1 << p
	if err := s.check(req, 1); err != nil {
		return err
	}

	// two distinct bits anywhere in the codeword
	q := s.rng.Intn(31)
	if q >= p {
		q++
	}
	req.Corrupt |= 1 << q
	return s.check(req, 2)
}

func (s *soak) check(req hardware.Request, flips int) error {
	res, err := s.dp.Run(req, nil)
	if err != nil {
		return err
	}

	s.report.Runs++
	s.report.Ticks += res.Ticks

	value, fl := model(req)
	if res.Value != value {
		s.fail("alu", "%s(0x%08x, 0x%08x) = 0x%08x, expected 0x%08x", req.Opcode, req.A, req.B, res.Value, value)
	}
	if res.Flags != fl {
		s.fail("alu", "%s(0x%08x, 0x%08x) flags %s, expected %s", req.Opcode, req.A, req.B, res.Flags, fl)
	}

	if c := vectors.Reference(res.Value); res.Checksum != c {
		s.fail("crc", "checksum of 0x%08x = 0x%08x, expected 0x%08x", res.Value, res.Checksum, c)
	}

	if !s.encode {
		return nil
	}

	switch flips {
	case 0:
		if res.Status != (hamming.Status{}) {
			s.fail("hamming", "clean codeword 0x%08x reported %s", res.Codeword, res.Status)
		}
	case 1:
		if !res.Status.SingleError || !res.Status.Corrected {
			s.fail("hamming", "single flip in 0x%08x reported %s", res.Codeword, res.Status)
		} else {
			s.report.Corrected++
		}
	default:
		if !res.Status.DoubleError {
			s.fail("hamming", "double flip in 0x%08x reported %s", res.Codeword, res.Status)
		} else {
			s.report.Detected++
		}
	}

	// the payload is unreliable after a double error
	if flips < 2 && res.Data != res.Checksum&hamming.DataMask {
		s.fail("hamming", "payload 0x%07x, expected 0x%07x", res.Data, res.Checksum&hamming.DataMask)
	}

	return nil
}

// model the ALU by calling the units directly
func model(req hardware.Request) (uint32, flags.FlagSet) {
	op := req.Opcode & alu.OpcodeMask
	code := op.Code()

	ar := arithmetic.Evaluate(req.A, req.B, arithmetic.Op(code))
	lr := logic.Evaluate(req.A, req.B, logic.Op(code))

	value := ar.Value
	if req.Path == flags.Logic {
		value = lr.Value
	}

	return value, flags.Synthesize(value,
		flags.Unit{Carry: ar.Carry, Overflow: ar.Overflow},
		flags.Unit{Carry: lr.Carry},
		req.Path)
}
