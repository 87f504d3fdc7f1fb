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

package monitor

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/hardware"
	"github.com/rvboard/rvboard/logger"
)

// Error patterns used by the monitor package.
const (
	UnknownCommand = "monitor: unknown command: %s"
	BadArguments   = "monitor: %s: %v"
	NotRAM         = "monitor: 0x%08x is not in RAM"
)

// Prompt is the prompt used by Run().
const Prompt = "rvboard> "

// the maximum number of bytes printed by a single peek
const maxPeek = 256

type command struct {
	name string
	args string
	help string
}

var commands = []command{
	{name: "help", help: "list commands"},
	{name: "map", help: "list mapped areas"},
	{name: "harts", help: "list harts"},
	{name: "reset", help: "reset every hart"},
	{name: "rom", help: "disassemble the reset stub"},
	{name: "peek", args: "<addr> [n]", help: "print n bytes at address"},
	{name: "poke", args: "<addr> <byte>", help: "write byte to RAM"},
	{name: "log", args: "[n]", help: "print the most recent log entries"},
	{name: "summary", help: "print the machine summary"},
	{name: "quit", help: "leave the monitor"},
}

// Monitor over a machine.
type Monitor struct {
	m *hardware.Machine
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(m *hardware.Machine) *Monitor {
	return &Monitor{m: m}
}

func parseNumber(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

// Execute a single command line, writing any output to w. Returns true if the
// line asks to leave the monitor. Empty lines do nothing.
func (mon *Monitor) Execute(line string, w io.Writer) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		for _, c := range commands {
			fmt.Fprintf(w, "%-8s %-14s %s\n", c.name, c.args, c.help)
		}

	case "map":
		io.WriteString(w, mon.m.Mem.Summary())

	case "harts":
		for _, h := range mon.m.Harts() {
			fmt.Fprintln(w, h.String())
		}

	case "reset":
		if err := mon.m.Reset(); err != nil {
			return false, err
		}
		fmt.Fprintf(w, "%d hart(s) reset\n", len(mon.m.Harts()))

	case "rom":
		io.WriteString(w, mon.m.Vector.Listing(mon.m.SoC.MaskROM.Origin()))

	case "peek":
		return false, mon.peek(args, w)

	case "poke":
		return false, mon.poke(args, w)

	case "log":
		n := 10
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return false, curated.Errorf(BadArguments, cmd, "count must be a positive number")
			}
			n = v
		}
		logger.Tail(w, n)

	case "summary":
		io.WriteString(w, mon.m.String())

	case "quit", "exit", "q":
		return true, nil

	default:
		return false, curated.Errorf(UnknownCommand, cmd)
	}

	return false, nil
}

func (mon *Monitor) peek(args []string, w io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return curated.Errorf(BadArguments, "peek", "expected <addr> [n]")
	}

	addr, err := parseNumber(args[0])
	if err != nil {
		return curated.Errorf(BadArguments, "peek", err)
	}

	n := uint64(1)
	if len(args) == 2 {
		n, err = parseNumber(args[1])
		if err != nil || n == 0 || n > maxPeek {
			return curated.Errorf(BadArguments, "peek", fmt.Sprintf("count must be between 1 and %d", maxPeek))
		}
	}

	for i := uint64(0); i < n; i++ {
		if i%16 == 0 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%08x:", addr+i)
		}
		v, err := mon.m.Mem.Peek(addr + i)
		if err != nil {
			fmt.Fprintln(w)
			return err
		}
		fmt.Fprintf(w, " %02x", v)
	}
	fmt.Fprintln(w)

	return nil
}

func (mon *Monitor) poke(args []string, w io.Writer) error {
	if len(args) != 2 {
		return curated.Errorf(BadArguments, "poke", "expected <addr> <byte>")
	}

	addr, err := parseNumber(args[0])
	if err != nil {
		return curated.Errorf(BadArguments, "poke", err)
	}

	v, err := parseNumber(args[1])
	if err != nil || v > 0xff {
		return curated.Errorf(BadArguments, "poke", "value must be a byte")
	}

	ram := mon.m.RAM
	if addr < ram.Origin() || addr-ram.Origin() >= ram.Size() {
		return curated.Errorf(NotRAM, addr)
	}

	if err := mon.m.Mem.Poke(addr, uint8(v)); err != nil {
		return err
	}
	fmt.Fprintf(w, "%08x: %02x\n", addr, v)

	return nil
}

// Run the monitor on the terminal until the quit command, end of input or
// until the context is cancelled.
func (mon *Monitor) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer rl.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}

		quit, err := mon.Execute(line, rl.Stdout())
		if err != nil {
			fmt.Fprintln(rl.Stderr(), err)
		}
		if quit {
			return nil
		}
	}
}
