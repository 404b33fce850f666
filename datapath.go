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
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/datapath/hardware"
	"github.com/jetsetilly/datapath/hardware/alu"
	"github.com/jetsetilly/datapath/hardware/alu/flags"
	"github.com/jetsetilly/datapath/logger"
	"github.com/jetsetilly/datapath/modalflag"
	"github.com/jetsetilly/datapath/monitor"
	"github.com/jetsetilly/datapath/monitor/easyterm"
	"github.com/jetsetilly/datapath/paths"
	"github.com/jetsetilly/datapath/prefs"
	"github.com/jetsetilly/datapath/soak"
	"github.com/jetsetilly/datapath/statsview"
	"github.com/jetsetilly/datapath/vectors"
	"github.com/jetsetilly/datapath/version"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the top level mode and hands over to the mode function.
// Returns the exit value for the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "VECTORS", "SOAK", "TRACE", "MONITOR", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "VECTORS":
		err = vectorsMode(md)

	case "SOAK":
		err = soakMode(md)

	case "TRACE":
		err = traceMode(md)

	case "MONITOR":
		err = monitorMode(md)

	case "DUMP":
		err = dump(md)

	case "VERSION":
		err = versionMode(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// flags common to every mode
type common struct {
	prefs *string
	log   *bool
}

func addCommon(md *modalflag.Modes) common {
	return common{
		prefs: md.AddString("prefs", "", "preferences for this run, for example \"datapath.tickLimit::100\""),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

// preferences applies the common flags and returns the datapath preferences
// with any values given on the command line.
func (c common) preferences(output io.Writer) (*hardware.Preferences, error) {
	if *c.log {
		logger.SetEcho(output)
	}

	prefs.PushCommandLineStack(*c.prefs)
	p, err := hardware.NewPreferences()

	// preferences not consumed by NewPreferences() are not fatal
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(output, "* unused preferences: %s\n", unused)
	}

	return p, err
}

func (c common) datapath(output io.Writer) (*hardware.Datapath, error) {
	p, err := c.preferences(output)
	if err != nil {
		return nil, err
	}
	return hardware.NewDatapath(p)
}

// flags describing a request
type request struct {
	a       *uint32
	b       *uint32
	op      *string
	path    *string
	corrupt *uint32
}

func addRequest(md *modalflag.Modes) request {
	return request{
		a:       md.AddWord("a", 0, "first operand"),
		b:       md.AddWord("b", 0, "second operand"),
		op:      md.AddString("op", "ADD", "operation name or opcode"),
		path:    md.AddString("path", "", "result path: ARITHMETIC or LOGIC (default chosen by operation)"),
		corrupt: md.AddWord("corrupt", 0, "bits of the codeword to flip before decoding"),
	}
}

func (r request) request() (hardware.Request, error) {
	op, path, err := alu.ParseOpcode(*r.op)
	if err != nil {
		return hardware.Request{}, err
	}

	switch *r.path {
	case "":
	case "ARITHMETIC", "arithmetic":
		path = flags.Arithmetic
	case "LOGIC", "logic":
		path = flags.Logic
	default:
		return hardware.Request{}, fmt.Errorf("unknown path (%s)", *r.path)
	}

	return hardware.Request{
		A:       *r.a,
		B:       *r.b,
		Opcode:  op,
		Path:    path,
		Corrupt: *r.corrupt,
	}, nil
}

func writeResult(output io.Writer, res hardware.Result) {
	fmt.Fprintf(output, "alu:      0x%08x %s\n", res.Value, res.Flags)
	fmt.Fprintf(output, "crc:      0x%08x\n", res.Checksum)
	fmt.Fprintf(output, "codeword: 0x%08x\n", res.Codeword)
	fmt.Fprintf(output, "hamming:  0x%07x syndrome=%06b %s\n", res.Data, uint8(res.Syndrome), res.Status)
	fmt.Fprintf(output, "ticks:    %d (alu %d, crc %d, hamming %d)\n", res.Ticks,
		res.StageTicks[hardware.StageALU], res.StageTicks[hardware.StageCRC], res.StageTicks[hardware.StageHamming])
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cmn := addCommon(md)
	rq := addRequest(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	req, err := rq.request()
	if err != nil {
		return err
	}

	dp, err := cmn.datapath(md.Output)
	if err != nil {
		return err
	}

	res, err := dp.Run(req, nil)
	if err != nil {
		return err
	}

	writeResult(md.Output, res)

	return nil
}

func vectorsMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("words to generate vectors for can be listed after the flags. with no\nwords the default list is used")

	testbench := md.AddBool("testbench", false, "only write the testbench task calls")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	words := vectors.Default
	if args := md.RemainingArgs(); len(args) > 0 {
		words = make([]uint32, 0, len(args))
		for _, a := range args {
			var w uint32
			if _, err := fmt.Sscan(a, &w); err != nil {
				return fmt.Errorf("not a 32 bit word: %s", a)
			}
			words = append(words, w)
		}
	}

	if *testbench {
		return vectors.WriteTestbench(md.Output, words)
	}
	return vectors.Write(md.Output, words)
}

func soakMode(md *modalflag.Modes) error {
	md.NewMode()

	cmn := addCommon(md)
	n := md.AddInt("n", 10000, "number of iterations")
	seed := md.AddInt64("seed", 0, "random seed (zero seeds from the clock)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available %v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	pr, err := cmn.preferences(md.Output)
	if err != nil {
		return err
	}

	_, err = soak.Run(soak.Config{
		Iterations: *n,
		Seed:       *seed,
		Prefs:      pr,
	}, md.Output)

	return err
}

func traceMode(md *modalflag.Modes) error {
	md.NewMode()

	cmn := addCommon(md)
	rq := addRequest(md)
	vcd := md.AddString("vcd", "", "write value change dump to file (default is a unique file in the traces resource directory)")
	wav := md.AddString("wav", "", "write WAV capture to file")
	png := md.AddString("png", "", "write PNG plot to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	req, err := rq.request()
	if err != nil {
		return err
	}

	dp, err := cmn.datapath(md.Output)
	if err != nil {
		return err
	}

	if err := dp.Prefs.Trace.Set(true); err != nil {
		return err
	}

	res, err := dp.Run(req, nil)
	if err != nil {
		return err
	}
	writeResult(md.Output, res)

	rec := dp.Recorder()

	if *vcd == "" && *wav == "" && *png == "" {
		*vcd, err = paths.CreateResourcePath("traces", paths.UniqueFilename("trace", *rq.op)+".vcd")
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "vcd:      %s\n", *vcd)
	}

	if *vcd != "" {
		if err := writeFile(*vcd, rec.WriteVCD); err != nil {
			return err
		}
	}

	if *wav != "" {
		f, err := os.Create(*wav)
		if err != nil {
			return err
		}
		if err := rec.WriteWAV(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if *png != "" {
		if err := writeFile(*png, rec.WritePNG); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(filename string, write func(io.Writer) error) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	return write(f)
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("keys: space/enter tick, a c h pulse ALU/CRC/decoder, r reset, q quit")

	cmn := addCommon(md)
	rq := addRequest(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	req, err := rq.request()
	if err != nil {
		return err
	}

	dp, err := cmn.datapath(md.Output)
	if err != nil {
		return err
	}

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	if err := term.CBreakMode(); err != nil {
		return err
	}
	defer term.CanonicalMode()

	mon := monitor.NewMonitor(dp, &term, &term)
	mon.Req = req

	return mon.Run()
}

func dump(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("output is in Graphviz dot format")

	cmn := addCommon(md)
	rq := addRequest(md)
	runFirst := md.AddBool("run", false, "run the request before dumping")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dp, err := cmn.datapath(md.Output)
	if err != nil {
		return err
	}

	if *runFirst {
		req, err := rq.request()
		if err != nil {
			return err
		}
		if _, err := dp.Run(req, nil); err != nil {
			return err
		}
	}

	dp.Dump(md.Output)

	return nil
}

func versionMode(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s\n", r)
	} else {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}
