/*
   VMUTool - Dreamcast Visual Memory image inspector
   Copyright (c) 2026, the VMUTool authors

   This file is part of VMUTool.

   VMUTool is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   VMUTool is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with VMUTool. If not, see <http://www.gnu.org/licenses/>.
*/

package run

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/xelalexv/vmutool/pkg/render"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
func NewShell() *Shell {

	s := &Shell{}
	s.Runner = NewRunner(
		"shell {image}",
		"interactively inspect an image",
		`
Use the shell command to open an image and inspect it interactively. Type help
at the prompt for a list of commands.`,
		"", runnerHelpEpilogue, s.Run)

	s.cmd.Args = cobra.ExactArgs(1)
	s.AddSetting(&s.History, "history", "", "VMUTOOL_HISTORY", "",
		"history file", false)
	s.AddSetting(&s.LogLevel, "log-level", "", "LOG_LEVEL", "warn",
		"log level (trace, debug, info, warn, error)", false)

	s.commands = map[string]*shellCommand{
		"info":   {"show root block", 0, 0, s.info},
		"ls":     {"list files", 0, 0, s.ls},
		"fat":    {"show file allocation table", 0, 0, s.fat},
		"header": {"show file header: header {entry}", 1, 1, s.header},
		"dump":   {"hex dump block: dump {block} | dump #{entry}", 1, 1, s.dump},
		"crc":    {"checksum blocks: crc {first block} [{count}]", 1, 2, s.crc},
		"help":   {"show this help", 0, 0, s.help},
	}

	return s
}

//
type shellCommand struct {
	description      string
	minArgs, maxArgs int
	run              func(w io.Writer, args []string) error
}

//
type Shell struct {
	*Runner
	//
	History string
	//
	card     *vms.Card
	commands map[string]*shellCommand
}

//
func (s *Shell) Run() error {

	card, err := s.loadCard(s.Arg(0))
	if err != nil {
		return err
	}
	s.card = card

	items := []readline.PrefixCompleterInterface{
		readline.PcItem("exit"), readline.PcItem("quit")}
	for _, name := range s.commandNames() {
		items = append(items, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("vms:%s> ", filepath.Base(card.Name())),
		HistoryFile:     s.History,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			return nil
		}
		if !s.process(rl.Stdout(), line) {
			return nil
		}
	}
}

// process runs a single command line. Returns false if the shell should
// exit.
func (s *Shell) process(w io.Writer, line string) bool {

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	verb, args := strings.ToLower(fields[0]), fields[1:]
	if verb == "exit" || verb == "quit" {
		return false
	}

	cmd, ok := s.commands[verb]
	if !ok {
		fmt.Fprintf(w, "unknown command: %s, try help\n", verb)
		return true
	}

	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		fmt.Fprintf(w, "%s: wrong number of arguments\n", verb)
		return true
	}

	if err := cmd.run(w, args); err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	}
	return true
}

//
func (s *Shell) commandNames() []string {
	var ret []string
	for name := range s.commands {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

//
func (s *Shell) info(w io.Writer, args []string) error {
	render.WriteRoot(w, s.card)
	return nil
}

//
func (s *Shell) ls(w io.Writer, args []string) error {
	render.WriteFileList(w, s.card)
	return nil
}

//
func (s *Shell) fat(w io.Writer, args []string) error {
	render.WriteFAT(w, s.card)
	return nil
}

//
func (s *Shell) header(w io.Writer, args []string) error {
	e, err := s.card.Lookup(args[0])
	if err != nil {
		return err
	}
	return render.WriteHeader(w, s.card, e)
}

//
func (s *Shell) dump(w io.Writer, args []string) error {

	if strings.HasPrefix(args[0], "#") {
		e, err := s.card.Lookup(args[0])
		if err != nil {
			return err
		}
		return render.WriteBlockDump(w, s.card, e.HeaderBlock())
	}

	block, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid block: %s", args[0])
	}
	return render.WriteBlockDump(w, s.card, block)
}

//
func (s *Shell) crc(w io.Writer, args []string) error {

	first, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid block: %s", args[0])
	}

	count := 1
	if len(args) > 1 {
		if count, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid count: %s", args[1])
		}
	}

	data, err := s.card.Image().ReadBlocks(first, count)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%04x\n", vms.CRC16(data))
	return nil
}

//
func (s *Shell) help(w io.Writer, args []string) error {
	fmt.Fprintln(w)
	for _, name := range s.commandNames() {
		fmt.Fprintf(w, "  %-8s %s\n", name, s.commands[name].description)
	}
	fmt.Fprintf(w, "  %-8s %s\n\n", "exit", "leave the shell")
	return nil
}
