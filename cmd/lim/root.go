/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lim

import (
	"fmt"
	"os"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/cmd/lim/bench"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/cmd/lim/repl"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/cmd/lim/run"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/cmd/lim/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "lim [file]",
		Short: "lim tokenizes, parses and runs programs in the lim teaching language",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return run.Command.RunE(cmd, args)
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format of tables [csv, json, text]")
	rootCmd.PersistentFlags().StringP("host", "H", "local", "Playground server to run programs on, local runs them in process")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the lim config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("lim.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("lim.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("lim.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("lim.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("lim version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	for _, cmd := range []*cobra.Command{
		run.Command,
		run.TokensCommand,
		run.ParseCommand,
		repl.Command,
		server.Command,
		bench.Command,
	} {
		cmd.Version = rootCmd.Version
		rootCmd.AddCommand(cmd)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("lim failed")
		os.Exit(1)
	}
}
