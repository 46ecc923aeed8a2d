/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package run

import (
	"fmt"
	"io"
	"os"
	"strings"

	lim "github.com/CrazzyCrisis/struct-prog-lang-Personal/api"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/ast"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/evaluator"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/repl"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a lim program",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		if host := viper.GetString("lim.host"); host != "" && host != "local" {
			return RunRemote(lim.NewClient(host, server.Config{
				MaxDepth:       viper.GetInt("lim.max-depth"),
				MaxSourceBytes: viper.GetInt64("lim.max-source-bytes"),
			}), source, os.Stdout, os.Stderr)
		}

		return RunProgram(source, os.Stdout, os.Stderr, log)
	},
}

var TokensCommand = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the tokens of a lim program",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		return PrintTokens(source, repl.NewOutputWriter(os.Stdout, viper.GetString("lim.output")), os.Stderr, log)
	},
}

var ParseCommand = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a lim program",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		return PrintTree(source, viper.GetBool("lim.sexp"), os.Stdout, os.Stderr, log)
	},
}

func init() {
	// Flags for this command
	ParseCommand.Flags().Bool("sexp", false, "Print the tree as a single line s-expression")

	// Bind flags to viper
	viper.BindPFlag("lim.sexp", ParseCommand.Flags().Lookup("sexp"))
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", path)
	}
	return string(data), nil
}

// RunProgram evaluates source, printing to out. Failures are rendered
// against the source on errOut and returned.
func RunProgram(source string, out, errOut io.Writer, log zerolog.Logger) error {
	program, err := lang.PrepareWithLogger(source, log)
	if err != nil {
		return report(source, err, errOut)
	}

	if err := evaluator.New(out, log).Evaluate(program); err != nil {
		return report(source, err, errOut)
	}

	return nil
}

// RunRemote runs source on a playground server through client
func RunRemote(client lim.Client, source string, out, errOut io.Writer) error {
	resp, err := client.Run(source)

	var remote *lim.RemoteError
	if errors.As(err, &remote) && remote.Response.Position != nil {
		kind := remote.Response.Kind
		header := fmt.Sprintf("%s%s error found in program:\n", strings.ToUpper(kind[:1]), kind[1:])
		fmt.Fprint(errOut, parse.FormatAt(header, source, parse.At(*remote.Response.Position, 1), remote.Response.Error))
		return err
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, resp.Output)
	return err
}

func PrintTokens(source string, writer repl.OutputWriter, errOut io.Writer, log zerolog.Logger) error {
	tokens, err := tokenizer.New(log).Tokenize(source)
	if err != nil {
		return report(source, err, errOut)
	}

	return writer.Write(repl.TokenTable(tokens))
}

func PrintTree(source string, sexp bool, out, errOut io.Writer, log zerolog.Logger) error {
	program, err := lang.PrepareWithLogger(source, log)
	if err != nil {
		return report(source, err, errOut)
	}

	if sexp {
		_, err = fmt.Fprintln(out, ast.Sexp(program))
	} else {
		_, err = fmt.Fprint(out, ast.ASTToString(program))
	}
	return err
}

func report(source string, err error, errOut io.Writer) error {
	fmt.Fprint(errOut, lang.FormatError(source, err))
	return err
}
