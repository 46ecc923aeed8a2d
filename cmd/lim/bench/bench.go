/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package bench

import (
	"io"
	"os"
	"time"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/ast"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/evaluator"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/parser"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "bench FILE",
	Short: "Time tokenizing, parsing and running a program repeatedly",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "unable to read %s", args[0])
		}

		_, err = Bench(log, string(data), viper.GetInt("count"))
		return err
	},
}

func init() {
	// Flags for this command
	Command.Flags().Int("count", 1000, "Number of times to process the program")

	// Bind flags to viper
	viper.BindPFlag("count", Command.Flags().Lookup("count"))
}

// Result holds the total time spent in each stage
type Result struct {
	Tokenize time.Duration
	Parse    time.Duration
	Evaluate time.Duration
}

// Bench processes source count times, logging the time spent per stage
func Bench(log zerolog.Logger, source string, count int) (Result, error) {
	var (
		result  Result
		tokens  []tokenizer.Token
		program *ast.ProgramNode
		err     error
	)

	log.Info().
		Str("size", humanize.Bytes(uint64(len(source)))).
		Str("count", humanize.Comma(int64(count))).
		Msg("benchmarking program")

	for i := 0; i < count; i++ {
		err = timeIt(log, "tokenize", &result.Tokenize, func() (err error) {
			tokens, err = tokenizer.Tokenize(source)
			return err
		})
		if err != nil {
			return result, err
		}

		err = timeIt(log, "parse", &result.Parse, func() (err error) {
			program, err = parser.Parse(tokens)
			return err
		})
		if err != nil {
			return result, err
		}

		err = timeIt(log, "evaluate", &result.Evaluate, func() error {
			return evaluator.New(io.Discard, zerolog.Nop()).Evaluate(program)
		})
		if err != nil {
			return result, err
		}
	}

	log.Info().
		Str("tokenize", result.Tokenize.String()).
		Str("parse", result.Parse.String()).
		Str("evaluate", result.Evaluate.String()).
		Msg("benchmark complete")

	return result, nil
}

func timeIt(log zerolog.Logger, name string, total *time.Duration, f func() error) error {
	t := time.Now()
	defer func() {
		d := time.Since(t)
		*total += d
		log.Trace().Str("dur", d.String()).Str("name", name).Send()
	}()
	return f()
}
