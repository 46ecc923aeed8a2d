/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lim

import (
	"strings"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/server"
	"github.com/rs/zerolog"
)

type Client interface {
	Tokens(source string) (server.TokensResponse, error)
	Parse(source string) (server.ParseResponse, error)
	Run(source string) (server.RunResponse, error)
}

// NewClient creates a Client for target. An http:// or https:// target talks
// to a running playground server whose own limits apply, anything else
// ("local", "") processes programs in this process under config's limits.
func NewClient(target string, config server.Config) Client {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return NewRemoteClient(target, nil)
	}

	return NewLocalClient(zerolog.Nop(), config)
}
