/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/evaluator"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/parser"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrTooLarge = errors.New("program too large")
	ErrTooDeep  = errors.New("program nested too deeply")
)

type Config struct {
	Port        int
	MetricsPort int

	// Zero disables the limit
	MaxDepth       int
	MaxSourceBytes int64
}

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore
	config  Config
	mux     ProgramMux
}

func New(log zerolog.Logger, config Config) *Server {
	s := &Server{
		log:     log,
		metrics: NewMetricsStore(),
		config:  config,
		mux:     NewMapMux(),
	}

	s.metrics.RegisterCollector(NewLimitsCollector(config))

	s.mux.Handle("tokens", s.handleTokens)
	s.mux.Handle("parse", s.handleParse)
	s.mux.Handle("run", s.handleRun)

	return s
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

// Process runs source through endpoint without going over HTTP. The same
// limits apply as for HTTP requests.
func (s *Server) Process(endpoint, source string) (any, error) {
	start := time.Now()
	id := uuid.NewString()
	log := s.log.With().Str("request-id", id).Str("endpoint", endpoint).Logger()

	if err := s.checkSize(source, log); err != nil {
		s.record(endpoint, "error", start)
		return nil, err
	}

	resp, err := s.mux.ServeProgram(endpoint, Request{ID: id, Source: source, Log: log})
	if err != nil {
		s.record(endpoint, "error", start)
		return nil, err
	}
	s.record(endpoint, "ok", start)
	return resp, nil
}

func (s *Server) ServePlayground() error {
	s.log.Info().Int("port", s.config.Port).Strs("endpoints", s.mux.Endpoints()).Msg("listening for programs")
	return http.ListenAndServe(fmt.Sprintf(":%d", s.config.Port), s)
}

func (s *Server) ServeMetrics() error {
	s.log.Info().Int("port", s.config.MetricsPort).Msg("/metrics endpoint started")
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", s.config.MetricsPort), mux)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	endpoint := strings.Trim(r.URL.Path, "/")

	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)

	log := s.log.With().Str("request-id", id).Str("endpoint", endpoint).Logger()

	if r.Method != http.MethodPost {
		s.writeJSON(w, log, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed", Kind: "request"})
		return
	}

	source, err := s.readSource(r.Body, log)
	if err != nil {
		s.fail(w, log, endpoint, start, err)
		return
	}

	resp, err := s.mux.ServeProgram(endpoint, Request{ID: id, Source: source, Log: log})
	if errors.Is(err, ErrUnknownEndpoint) {
		s.writeJSON(w, log, http.StatusNotFound, NewErrorResponse(err))
		return
	}
	if err != nil {
		s.fail(w, log, endpoint, start, err)
		return
	}

	s.record(endpoint, "ok", start)
	s.writeJSON(w, log, http.StatusOK, resp)
}

func (s *Server) readSource(body io.Reader, log zerolog.Logger) (string, error) {
	reader := body
	if s.config.MaxSourceBytes > 0 {
		reader = io.LimitReader(body, s.config.MaxSourceBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", errors.Wrap(err, "unable to read request body")
	}

	source := string(data)
	if err := s.checkSize(source, log); err != nil {
		return "", err
	}

	return source, nil
}

// checkSize enforces MaxSourceBytes on a program already in memory
func (s *Server) checkSize(source string, log zerolog.Logger) error {
	log.Debug().Str("size", humanize.Bytes(uint64(len(source)))).Msg("received program")

	if s.config.MaxSourceBytes > 0 && int64(len(source)) > s.config.MaxSourceBytes {
		return errors.Wrapf(ErrTooLarge, "limit is %s", humanize.Bytes(uint64(s.config.MaxSourceBytes)))
	}
	return nil
}

// record counts a finished request and its latency
func (s *Server) record(endpoint, result string, start time.Time) {
	s.metrics.IncRequests(endpoint, result)
	s.metrics.ObserveResponseNS(endpoint, time.Since(start).Nanoseconds())
}

func (s *Server) fail(w http.ResponseWriter, log zerolog.Logger, endpoint string, start time.Time, err error) {
	log.Info().Err(err).Msg("rejected program")
	s.record(endpoint, "error", start)
	s.writeJSON(w, log, http.StatusBadRequest, NewErrorResponse(err))
}

func (s *Server) writeJSON(w http.ResponseWriter, log zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
}

// tokenize runs the tokenizer and enforces the nesting limit, which is
// measured on tokens so that runaway input never reaches the parser.
func (s *Server) tokenize(req Request) ([]tokenizer.Token, error) {
	tokens, err := tokenizer.New(req.Log).Tokenize(req.Source)
	if err != nil {
		return nil, err
	}
	s.metrics.AddTokens(len(tokens))

	if s.config.MaxDepth > 0 {
		if depth := parser.Depth(tokens); depth > s.config.MaxDepth {
			return nil, errors.Wrapf(ErrTooDeep, "depth %d exceeds %d", depth, s.config.MaxDepth)
		}
	}

	return tokens, nil
}

func (s *Server) handleTokens(req Request) (any, error) {
	tokens, err := tokenizer.New(req.Log).Tokenize(req.Source)
	if err != nil {
		return nil, err
	}
	s.metrics.AddTokens(len(tokens))

	return NewTokensResponse(tokens), nil
}

func (s *Server) handleParse(req Request) (any, error) {
	tokens, err := s.tokenize(req)
	if err != nil {
		return nil, err
	}

	program, err := parser.New(tokens, req.Log).Parse()
	if err != nil {
		return nil, err
	}
	s.metrics.AddStatements(len(program.Statements))

	return NewParseResponse(program), nil
}

func (s *Server) handleRun(req Request) (any, error) {
	tokens, err := s.tokenize(req)
	if err != nil {
		return nil, err
	}

	program, err := parser.New(tokens, req.Log).Parse()
	if err != nil {
		return nil, err
	}
	s.metrics.AddStatements(len(program.Statements))

	var out bytes.Buffer
	e := evaluator.New(&out, req.Log)
	if err := e.Evaluate(program); err != nil {
		return nil, err
	}

	return NewRunResponse(out.String(), e.Symbols), nil
}
