/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/repl"
	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive terminal for running lim programs",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		output := viper.GetString("lim.output")
		if len(filterStringSlice([]string{"csv", "text", "json"}, output)) != 1 {
			log.Fatal().Str("output", output).Msg("unsupported output format")
		}

		return readlinePrompt(repl.NewSession(os.Stdout, output, log))
	},
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// listSymbols completes variable names defined so far in the session
func listSymbols(s *repl.Session) func(string) []string {
	return func(line string) []string {
		names := []string{}
		for name := range s.Symbols() {
			names = append(names, name)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasSuffix(line, " ") {
			return names
		}
		return filterStringSlice(names, fields[len(fields)-1])
	}
}

func readlinePrompt(s *repl.Session) error {
	// Configure the completer
	symbolItem := readline.PcItemDynamic(listSymbols(s))

	completer := readline.NewPrefixCompleter(
		readline.PcItem("print", symbolItem),
		readline.PcItem(repl.CommandTokens),
		readline.PcItem(repl.CommandAST),
		readline.PcItem(repl.CommandSymbols),
		readline.PcItem(repl.CommandHelp),
		readline.PcItem(repl.CommandExit),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		done, err := s.Execute(ln.Line)
		if err != nil {
			source := repl.ParseREPLCommand(ln.Line).Arg
			fmt.Fprint(os.Stderr, lang.FormatError(source, err))
			continue
		}
		if done {
			break
		}
	}
	rl.Clean()

	return nil
}
