/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrUnknownEndpoint = errors.New("unknown endpoint")

// Request is one program submitted to an endpoint
type Request struct {
	ID     string
	Source string
	Log    zerolog.Logger
}

type HandleProgram func(Request) (any, error)

type ProgramMux interface {
	ServeProgram(endpoint string, req Request) (any, error)
	Handle(endpoint string, f HandleProgram)
	Endpoints() []string
}

type MapMux struct {
	handlers map[string]HandleProgram
}

func NewMapMux() ProgramMux {
	return &MapMux{
		handlers: make(map[string]HandleProgram),
	}
}

func (mm *MapMux) ServeProgram(endpoint string, req Request) (any, error) {
	f, ok := mm.handlers[endpoint]
	if !ok {
		return nil, errors.Wrap(ErrUnknownEndpoint, endpoint)
	}
	return f(req)
}

func (mm *MapMux) Handle(endpoint string, f HandleProgram) {
	mm.handlers[endpoint] = f
}

func (mm *MapMux) Endpoints() []string {
	endpoints := make([]string, 0, len(mm.handlers))
	for e := range mm.handlers {
		endpoints = append(endpoints, e)
	}
	sort.Strings(endpoints)
	return endpoints
}
