// This file is part of vgaverify.
//
// vgaverify is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgaverify is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgaverify.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/vgaverify/capture"
	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/digest"
	"github.com/jetsetilly/vgaverify/dut/adapters"
	"github.com/jetsetilly/vgaverify/dut/serial"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/logger"
	"github.com/jetsetilly/vgaverify/modalflag"
	"github.com/jetsetilly/vgaverify/performance"
	"github.com/jetsetilly/vgaverify/prefs"
	"github.com/jetsetilly/vgaverify/regression"
	"github.com/jetsetilly/vgaverify/report"
	"github.com/jetsetilly/vgaverify/statsview"
	"github.com/jetsetilly/vgaverify/verify"
	"github.com/jetsetilly/vgaverify/version"
	"github.com/jetsetilly/vgaverify/wavwriter"
)

// exit values
const (
	exitPass     = 0
	exitFail     = 1
	exitArgument = 10
	exitRun      = 20
)

// sentinel pattern for errors in the command line arguments
const argumentError = "arguments: %v"

func main() {
	exitVal := make(chan int)

	// #ctrlc an interrupted run is not a passed run
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(exitVal)

	select {
	case <-intChan:
		fmt.Println("\r")
		os.Exit(exitRun)
	case v := <-exitVal:
		os.Exit(v)
	}
}

// launch is called from main() as a goroutine. the exit value is sent on the
// channel when the selected mode has completed.
func launch(exitVal chan int) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "REGRESS", "PERFORMANCE", "GOLDEN", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		exitVal <- exitPass
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		exitVal <- exitArgument
		return
	}

	passed := true

	switch md.Mode() {
	case "RUN":
		passed, err = run(md)

	case "REGRESS":
		passed, err = regress(md)

	case "PERFORMANCE":
		err = perform(md)

	case "GOLDEN":
		err = golden(md)

	case "PREFS":
		err = preferences(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if curated.Is(err, argumentError) {
			exitVal <- exitArgument
			return
		}

		// the most recent log entries often explain a failed run
		logger.Tail(os.Stdout, 5)
		exitVal <- exitRun
		return
	}

	if !passed {
		exitVal <- exitFail
		return
	}

	exitVal <- exitPass
}

// parse the arguments for the current mode. a help request is indicated by
// a false return value
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(argumentError, err)
	}
	if len(md.RemainingArgs()) > 0 {
		return false, curated.Errorf(argumentError, fmt.Sprintf("unexpected argument %q", md.GetArg(0)))
	}
	return true, nil
}

// pushPrefs places the preferences string on the command line stack. the
// returned function pops the stack and warns about unused entries.
func pushPrefs(s string) func() {
	if s == "" {
		return func() {}
	}
	prefs.PushCommandLineStack(s)
	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("* unused preferences: %s\n", unused)
		}
	}
}

func run(md *modalflag.Modes) (bool, error) {
	md.NewMode()
	md.AdditionalHelp("Reset the device under test and verify its output against the reference design.")

	adapter := md.AddString("adapter", "SIM", "device adapter: SIM, FIXED, SERIAL")
	device := md.AddString("device", "", "serial device (SERIAL adapter only)")
	baud := md.AddInt("baud", 0, "serial baud rate (SERIAL adapter only)")
	basic := md.AddBool("basic", true, "run basic test of the first two lines")
	frame := md.AddBool("frame", true, "run test of the first frame")
	progress := md.AddInt("progress", verify.DefaultProgressInterval, "matching samples between progress dots (0 to disable)")
	prefsArg := md.AddString("prefs", "", "preferences to override (eg. \"verify.frame::false\")")
	snapshot := md.AddString("snapshot", "", "save the frame to a PNG file (AUTO for a unique filename)")
	scale := md.AddInt("scale", 1, "scaling of snapshot image")
	wav := md.AddString("wav", "", "record the speaker to a WAV file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memvizFile := md.AddString("memviz", "", "write a graph of the results to a dot file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	verbose := md.AddBool("verbose", false, "log every event, including those in sample loops")

	ok, err := parse(md)
	if !ok {
		return true, err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	logger.Log(logger.Allow, "vgaverify", version.String())

	defer pushPrefs(*prefsArg)()

	// preferences on disk are overridden by flags on the command line
	vprefs, err := verify.NewPreferences()
	if err != nil {
		return false, err
	}
	cfg := vprefs.Config()
	md.Visit(func(flg string) {
		switch flg {
		case "basic":
			cfg.Basic = *basic
		case "frame":
			cfg.Frame = *frame
		case "progress":
			cfg.ProgressInterval = *progress
		case "verbose":
			cfg.Verbose = *verbose
		}
	})

	if cfg.ProgressInterval < 0 {
		return false, curated.Errorf(argumentError, "progress interval cannot be negative")
	}
	if *snapshot != "" && !cfg.Frame {
		return false, curated.Errorf(argumentError, "snapshot requires the frame test")
	}
	if *wav != "" && !cfg.Frame {
		return false, curated.Errorf(argumentError, "wav recording requires the frame test")
	}

	lnk, err := adapters.Create(*adapter, *device, *baud)
	if err != nil {
		if curated.Is(err, adapters.UnknownAdapter) {
			return false, curated.Errorf(argumentError, err)
		}
		return false, err
	}
	defer lnk.Close()

	mode := specification.VGA640x480

	ctx, err := verify.NewContext(lnk, mode)
	if err != nil {
		return false, err
	}

	su := verify.NewSuite(ctx, cfg)
	txt := report.NewText(os.Stdout)
	su.Reporter = txt

	dig := digest.NewVideo(mode)
	su.AddSink(dig)

	var frm *capture.Frame
	if *snapshot != "" {
		frm = capture.NewFrame(mode)
		su.AddSink(frm)
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, mode)
		if err != nil {
			return false, err
		}
		su.AddSink(aw)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	results, err := su.Run()
	if err != nil {
		return false, err
	}
	txt.Summary(results)

	if cfg.Frame {
		fmt.Printf("Frame digest: %s\n", dig.Hash())
	}

	if frm != nil {
		fn := *snapshot
		if strings.ToUpper(fn) == "AUTO" {
			fn = ""
		}
		fn, err = frm.Save(fn, *scale)
		if err != nil {
			return false, err
		}
		fmt.Printf("Frame saved to %s\n", fn)
	}

	if aw != nil {
		if err := aw.Write(); err != nil {
			return false, err
		}
		fmt.Printf("Speaker saved to %s\n", *wav)
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return false, err
		}
		defer f.Close()
		memviz.Map(f, &results)
	}

	return verify.Passed(results), nil
}

func regress(md *modalflag.Modes) (bool, error) {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")
	md.AdditionalHelp("Record frame digests of a device and check later runs against them.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return true, nil
	case modalflag.ParseError:
		return false, curated.Errorf(argumentError, err)
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		md.AdditionalHelp("Optional arguments are the database keys of the entries to run.")

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop on the first entry that returns an error")

		p, err := md.Parse()
		switch p {
		case modalflag.ParseHelp:
			return true, nil
		case modalflag.ParseError:
			return false, curated.Errorf(argumentError, err)
		}

		return regression.RegressRun(md.Output, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		ok, err := parse(md)
		if !ok {
			return true, err
		}

		return true, regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		switch p {
		case modalflag.ParseHelp:
			return true, nil
		case modalflag.ParseError:
			return false, curated.Errorf(argumentError, err)
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return false, curated.Errorf(argumentError, fmt.Sprintf("database key required for %s mode", md))
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = strings.NewReader("y")
			} else {
				confirmation = os.Stdin
			}
			return true, regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return false, curated.Errorf(argumentError, "only one entry can be deleted at a time")
		}

	case "ADD":
		md.NewMode()
		md.AdditionalHelp("The frame scenario is run on the device and the digest of the frame is recorded.")

		adapter := md.AddString("adapter", "SIM", "device adapter: SIM, FIXED, SERIAL")
		device := md.AddString("device", "", "serial device (SERIAL adapter only)")
		baud := md.AddInt("baud", 0, "serial baud rate (SERIAL adapter only)")
		notes := md.AddString("notes", "", "additional annotation for the database")

		ok, err := parse(md)
		if !ok {
			return true, err
		}

		reg := regression.NewDigestRegression(*adapter, *device, *baud)
		reg.Notes = *notes

		err = regression.RegressAdd(md.Output, reg)
		if err != nil {
			// carriage return overwrites the progress output of RegressAdd()
			return false, fmt.Errorf("\rerror adding regression test: %w", err)
		}
	}

	return true, nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Measure how quickly the device can be sampled.")

	adapter := md.AddString("adapter", "SIM", "device adapter: SIM, FIXED, SERIAL")
	device := md.AddString("device", "", "serial device (SERIAL adapter only)")
	baud := md.AddInt("baud", 0, "serial baud rate (SERIAL adapter only)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	ok, err := parse(md)
	if !ok {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	lnk, err := adapters.Create(*adapter, *device, *baud)
	if err != nil {
		if curated.Is(err, adapters.UnknownAdapter) {
			return curated.Errorf(argumentError, err)
		}
		return err
	}
	defer lnk.Close()

	fmt.Printf("%s: %s\n", lnk, specification.VGA640x480)
	return performance.Check(md.Output, prf, lnk, specification.VGA640x480, "2s", *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	ok, err := parse(md)
	if !ok {
		return err
	}

	fmt.Println(version.String())
	return nil
}

func golden(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Print the expected colour counts for one frame of the reference design.")

	ok, err := parse(md)
	if !ok {
		return err
	}

	mode := specification.VGA640x480
	fmt.Printf("%s: %d samples per frame\n", mode, mode.ClocksPerFrame())
	fmt.Printf("%-10s%10s\n", "Color", "Expected")
	fmt.Print(verify.ReferenceGolden)
	return nil
}

func preferences(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Print the current preferences.")

	prefsArg := md.AddString("prefs", "", "preferences to override (eg. \"serial.baud::9600\")")
	save := md.AddBool("save", false, "save preferences to disk")
	defaults := md.AddBool("defaults", false, "revert preferences to default values")

	ok, err := parse(md)
	if !ok {
		return err
	}

	defer pushPrefs(*prefsArg)()

	vprefs, err := verify.NewPreferences()
	if err != nil {
		return err
	}
	sprefs, err := serial.NewPreferences()
	if err != nil {
		return err
	}

	if *defaults {
		vprefs.SetDefaults()
		sprefs.SetDefaults()
	}

	fmt.Print(vprefs)
	fmt.Print(sprefs)

	if *save {
		if err := vprefs.Save(); err != nil {
			return err
		}
		if err := sprefs.Save(); err != nil {
			return err
		}
	}

	return nil
}
