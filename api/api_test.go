/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lim

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clients(t *testing.T) map[string]Client {
	t.Helper()

	ts := httptest.NewServer(server.New(zerolog.Nop(), server.Config{MaxDepth: 8}))
	t.Cleanup(ts.Close)

	return map[string]Client{
		"local":  NewLocalClient(zerolog.Nop(), server.Config{MaxDepth: 8}),
		"remote": NewClient(ts.URL, server.Config{}),
	}
}

func TestClientRun(t *testing.T) {
	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			resp, err := c.Run("x = 2; print x + 0.5")
			require.NoError(t, err)
			assert.Equal(t, "2.5\n", resp.Output)
			assert.Equal(t, []server.Symbol{{Name: "x", Kind: "int", Value: "2"}}, resp.Symbols)
		})
	}
}

func TestClientParse(t *testing.T) {
	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			resp, err := c.Parse("a || b && c")
			require.NoError(t, err)
			assert.Equal(t, "(program (|| a (&& b c)))", resp.Sexp)
		})
	}
}

func TestClientTokens(t *testing.T) {
	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			resp, err := c.Tokens("print 1")
			require.NoError(t, err)
			require.Len(t, resp.Tokens, 3)
			assert.Equal(t, "print", resp.Tokens[0].Tag)
			assert.Equal(t, 7, resp.Tokens[2].Position)
		})
	}
}

func TestLocalClientErrors(t *testing.T) {
	c := NewLocalClient(zerolog.Nop(), server.Config{})

	_, err := c.Parse("1 +")
	var syntaxError *parse.SyntaxError
	assert.True(t, errors.As(err, &syntaxError))
}

func TestLocalClientLimits(t *testing.T) {
	c := NewLocalClient(zerolog.Nop(), server.Config{MaxSourceBytes: 4, MaxDepth: 1})

	_, err := c.Run("print 1+1+1+1+1+1+1+1")
	require.Error(t, err)
	assert.ErrorIs(t, err, server.ErrTooLarge)
	assert.Equal(t, "limit", server.NewErrorResponse(err).Kind)

	_, err = c.Parse("--1")
	assert.ErrorIs(t, err, server.ErrTooDeep)

	resp, err := c.Run("1+1")
	require.NoError(t, err)
	assert.Empty(t, resp.Output)
}

func TestNewClientPassesLimitsToLocal(t *testing.T) {
	c := NewClient("local", server.Config{MaxSourceBytes: 4})

	_, err := c.Tokens("print 12345")
	assert.ErrorIs(t, err, server.ErrTooLarge)
}

func TestRemoteClientErrors(t *testing.T) {
	ts := httptest.NewServer(server.New(zerolog.Nop(), server.Config{MaxDepth: 1}))
	defer ts.Close()

	c := NewRemoteClient(ts.URL+"/", nil)

	_, err := c.Run("print 1 +")
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, 400, remote.Status)
	assert.Equal(t, "syntax", remote.Response.Kind)
	require.NotNil(t, remote.Response.Position)
	assert.Equal(t, 9, *remote.Response.Position)
	assert.NotEmpty(t, remote.RequestID)

	_, err = c.Parse("((1))")
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "limit", remote.Response.Kind)
}

func TestNewClientDefaultsToLocal(t *testing.T) {
	_, ok := NewClient("local", server.Config{}).(*LocalClient)
	assert.True(t, ok)

	_, ok = NewClient("http://localhost:8001", server.Config{}).(*RemoteClient)
	assert.True(t, ok)
}
