/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strings"
)

const (
	CommandRun     = "run"
	CommandTokens  = ".tokens"
	CommandAST     = ".ast"
	CommandSymbols = ".symbols"
	CommandHelp    = "help"
	CommandExit    = "exit"
)

// Command is one line of REPL input split into a command and its argument.
// Lines that are not a REPL command are programs to run.
type Command struct {
	Name string
	Arg  string
}

// ParseREPLCommand parses input from the command line
//
// This function assumes there is no '\n'
func ParseREPLCommand(line string) Command {
	line = strings.TrimSpace(line)

	// all commands have a space after them, if not then they are command only
	// like exit
	cmd, arg, _ := strings.Cut(line, " ")

	switch strings.ToLower(cmd) {
	case CommandTokens, CommandAST:
		return Command{Name: strings.ToLower(cmd), Arg: strings.TrimSpace(arg)}
	case CommandSymbols, CommandHelp, CommandExit:
		if arg == "" {
			return Command{Name: strings.ToLower(cmd)}
		}
	case "quit":
		if arg == "" {
			return Command{Name: CommandExit}
		}
	}

	return Command{Name: CommandRun, Arg: line}
}
