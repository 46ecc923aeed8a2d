/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lim

import (
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// LocalClient answers requests with an in-process playground. Its config
// limits are enforced exactly as a server enforces them on HTTP requests.
type LocalClient struct {
	srv *server.Server
}

func NewLocalClient(log zerolog.Logger, config server.Config) *LocalClient {
	return &LocalClient{srv: server.New(log, config)}
}

func (client *LocalClient) Tokens(source string) (server.TokensResponse, error) {
	return process[server.TokensResponse](client, "tokens", source)
}

func (client *LocalClient) Parse(source string) (server.ParseResponse, error) {
	return process[server.ParseResponse](client, "parse", source)
}

func (client *LocalClient) Run(source string) (server.RunResponse, error) {
	return process[server.RunResponse](client, "run", source)
}

func process[T any](client *LocalClient, endpoint, source string) (T, error) {
	var zero T

	resp, err := client.srv.Process(endpoint, source)
	if err != nil {
		return zero, err
	}

	t, ok := resp.(T)
	if !ok {
		return zero, errors.Errorf("unexpected %T response from %s", resp, endpoint)
	}
	return t, nil
}
