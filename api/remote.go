/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lim

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/server"
	"github.com/pkg/errors"
)

// A RemoteClient talks to a playground server over HTTP.
type RemoteClient struct {
	base string
	http *http.Client
}

// RemoteError is an error reported by the server
type RemoteError struct {
	Status    int
	RequestID string
	Response  server.ErrorResponse
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s error (%d): %s", e.Response.Kind, e.Status, e.Response.Error)
}

func NewRemoteClient(base string, c *http.Client) *RemoteClient {
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}
	return &RemoteClient{base: strings.TrimSuffix(base, "/"), http: c}
}

func (client *RemoteClient) Tokens(source string) (server.TokensResponse, error) {
	var resp server.TokensResponse
	return resp, client.post("tokens", source, &resp)
}

func (client *RemoteClient) Parse(source string) (server.ParseResponse, error) {
	var resp server.ParseResponse
	return resp, client.post("parse", source, &resp)
}

func (client *RemoteClient) Run(source string) (server.RunResponse, error) {
	var resp server.RunResponse
	return resp, client.post("run", source, &resp)
}

func (client *RemoteClient) post(endpoint, source string, v any) error {
	resp, err := client.http.Post(client.base+"/"+endpoint, "text/plain", strings.NewReader(source))
	if err != nil {
		return errors.Wrapf(err, "unable to reach %s", client.base)
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)
	if resp.StatusCode != http.StatusOK {
		remote := &RemoteError{Status: resp.StatusCode, RequestID: resp.Header.Get("X-Request-Id")}
		if err := dec.Decode(&remote.Response); err != nil {
			return errors.Wrapf(err, "unable to decode %d response", resp.StatusCode)
		}
		return remote
	}

	return errors.Wrap(dec.Decode(v), "unable to decode response")
}
