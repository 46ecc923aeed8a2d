/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "HTTP playground for tokenizing, parsing and running programs",

	RunE: func(cmd *cobra.Command, args []string) error {
		logger := viper.Get("logger").(zerolog.Logger)

		srv := server.New(logger, buildConfig())

		// Serve the metrics endpoint
		go func() {
			if err := srv.ServeMetrics(); err != nil {
				logger.Error().Err(err).Msg("metrics endpoint stopped")
			}
		}()

		// Serve the playground
		return srv.ServePlayground()
	},
}

func buildConfig() server.Config {
	return server.Config{
		Port:           viper.GetInt("lim.port"),
		MetricsPort:    viper.GetInt("lim.prom-port"),
		MaxDepth:       viper.GetInt("lim.max-depth"),
		MaxSourceBytes: viper.GetInt64("lim.max-source-bytes"),
	}
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Playground server port")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")
	Command.Flags().Int("max-depth", 256, "Reject programs nested deeper than this, 0 for no limit")
	Command.Flags().Int64("max-source-bytes", 64*1024, "Reject programs larger than this, 0 for no limit")

	// Bind flags to viper
	viper.BindPFlag("lim.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("lim.prom-port", Command.Flags().Lookup("prom-port"))
	viper.BindPFlag("lim.max-depth", Command.Flags().Lookup("max-depth"))
	viper.BindPFlag("lim.max-source-bytes", Command.Flags().Lookup("max-source-bytes"))
}
