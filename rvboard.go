// This file is part of rvboard.
//
// rvboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rvboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rvboard.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/rvboard/rvboard/bootloader"
	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/environment"
	"github.com/rvboard/rvboard/hardware"
	"github.com/rvboard/rvboard/hardware/memory/memorymap"
	"github.com/rvboard/rvboard/hardware/preferences"
	"github.com/rvboard/rvboard/hardware/resetvec"
	"github.com/rvboard/rvboard/hardware/serial"
	"github.com/rvboard/rvboard/logger"
	"github.com/rvboard/rvboard/modalflag"
	"github.com/rvboard/rvboard/monitor"
	"github.com/rvboard/rvboard/snapshot"
	"github.com/rvboard/rvboard/statsview"
	"github.com/rvboard/rvboard/version"
)

// exit values
const (
	exitOK        = 0
	exitArguments = 10
	exitMode      = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// for os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "MAP", "SNAPSHOT", "VECTOR")
	md.AdditionalHelp(fmt.Sprintf("%s brings up an emulated RISC-V board. RUN is the default mode.", version.ApplicationName))
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)
	case "MAP":
		err = showMap(md, output)
	case "SNAPSHOT":
		err = takeSnapshot(md, output)
	case "VECTOR":
		err = showVector(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return exitOK
}

// board flags common to the modes that build a machine.
type boardFlags struct {
	harts  *int
	cpu    *string
	kernel *string
	serial *string
	config *string
	log    *bool
}

func addBoardFlags(md *modalflag.Modes) boardFlags {
	return boardFlags{
		harts:  md.AddInt("harts", 1, fmt.Sprintf("number of harts (1 to %d)", preferences.MaxHarts)),
		cpu:    md.AddString("cpu", preferences.DefaultCPUType, "hart type"),
		kernel: md.AddString("kernel", "", "boot image to load into RAM (file or URL)"),
		serial: md.AddString("serial", preferences.DefaultSerial, "serial backend: null, stdio, tty, device:path[@baud]"),
		config: md.AddString("config", "", "board preferences file (default from resource path)"),
		log:    md.AddBool("log", false, "echo log to stderr"),
	}
}

// preferences from file with any flags set on the command line taking
// precedence.
func (bf boardFlags) preferences(md *modalflag.Modes) (*preferences.Preferences, error) {
	var prefs *preferences.Preferences
	var err error

	if *bf.config != "" {
		prefs, err = preferences.Load(*bf.config)
	} else {
		prefs, err = preferences.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	md.Visit(func(flg string) {
		switch flg {
		case "harts":
			prefs.NumHarts = *bf.harts
		case "cpu":
			prefs.CPUType = *bf.cpu
		case "kernel":
			prefs.Kernel = *bf.kernel
		case "serial":
			prefs.Serial = *bf.serial
		}
	})

	// a single remaining argument is a boot image
	if len(md.RemainingArgs()) == 1 {
		prefs.Kernel = md.GetArg(0)
	} else if len(md.RemainingArgs()) > 1 {
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	return prefs, nil
}

// build a machine from the board flags. the ImageLoadFailure error is
// reported and is not fatal.
func (bf boardFlags) build(md *modalflag.Modes, output io.Writer) (*hardware.Machine, error) {
	if *bf.log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs, err := bf.preferences(md)
	if err != nil {
		return nil, err
	}

	backend, err := serial.Open(prefs.Serial)
	if err != nil {
		return nil, err
	}

	env := environment.NewEnvironment(prefs)
	m, err := hardware.NewMachine(env, backend, &bootloader.Kernel{})
	if err != nil {
		if m == nil {
			backend.Close()
			return nil, err
		}
		fmt.Fprintf(output, "* %v\n", err)
	}

	return m, nil
}

func closeMachine(m *hardware.Machine) {
	be := m.SoC.UART.Backend()
	if err := m.Close(); err != nil {
		logger.Log(m.Environment(), "rvboard", err)
	}
	be.Close()
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	bf := addBoardFlags(md)
	mon := md.AddBool("monitor", false, "start the interactive monitor")
	viz := md.AddString("memviz", "", "write a graphviz description of the machine state to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(output, statsview.Address)
	}

	m, err := bf.build(md, output)
	if err != nil {
		return err
	}
	defer closeMachine(m)

	io.WriteString(output, m.String())

	if *viz != "" {
		if err := writeMemviz(m, *viz); err != nil {
			return err
		}
	}

	if *mon {
		return monitor.NewMonitor(m).Run(ctx)
	}

	return nil
}

// the graph is of the snapshot rather than the machine because the machine
// holds the entire RAM array.
func writeMemviz(m *hardware.Machine, filename string) error {
	s, err := m.Snapshot()
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	memviz.Map(f, &s)
	if err := f.Close(); err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	return nil
}

func showMap(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	io.WriteString(output, memorymap.Summary())
	return nil
}

func takeSnapshot(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	bf := addBoardFlags(md)
	out := md.AddString("o", "rvboard.snapshot", "output file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := bf.build(md, output)
	if err != nil {
		return err
	}
	defer closeMachine(m)

	s, err := m.Snapshot()
	if err != nil {
		return err
	}

	data, err := snapshot.Encode(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	fmt.Fprintf(output, "snapshot written to %s (%d bytes)\n", *out, len(data))

	return nil
}

func showVector(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	base := md.AddAddress("base", memorymap.Lookup(memorymap.RAM).Base, "RAM base address")
	origin := md.AddAddress("origin", memorymap.Lookup(memorymap.MaskROM).Base, "address of the reset stub")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, err := resetvec.Synthesize(*base)
	if err != nil {
		return err
	}
	io.WriteString(output, v.Listing(*origin))

	return nil
}
