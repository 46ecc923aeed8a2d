/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/evaluator"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Printable is anything that can be rendered as a table of rows
type Printable interface {
	Headers() []string
	Values() [][]string
}

type OutputWriter interface {
	Write(v Printable) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return errors.Wrap(err, "unable to write csv header")
	}
	return errors.Wrap(wtr.WriteAll(v.Values()), "unable to write csv rows")
}

func (w TextWriter) Write(v Printable) error {
	table := tablewriter.NewWriter(w.w)
	headers := make([]any, 0, len(v.Headers()))
	for _, h := range v.Headers() {
		headers = append(headers, h)
	}
	table.Header(headers...)
	if err := table.Bulk(v.Values()); err != nil {
		return errors.Wrap(err, "unable to build table")
	}
	return errors.Wrap(table.Render(), "unable to render table")
}

// Write encodes each row as an object keyed by header
func (w JSONWriter) Write(v Printable) error {
	headers := v.Headers()
	rows := []map[string]string{}
	for _, values := range v.Values() {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			}
		}
		rows = append(rows, row)
	}

	enc := json.NewEncoder(w.w)
	return errors.Wrap(enc.Encode(rows), "unable to encode json")
}

// TokenTable prints a token stream, sentinel included
type TokenTable []tokenizer.Token

func (t TokenTable) Headers() []string {
	return []string{"position", "tag", "lexeme", "value"}
}

func (t TokenTable) Values() [][]string {
	rows := make([][]string, 0, len(t))
	for _, tok := range t {
		value := ""
		if tok.Value != nil {
			value = fmt.Sprintf("%s(%s)", tok.Value.Kind(), tok.Value)
		}
		rows = append(rows, []string{fmt.Sprint(tok.Position), tok.Tag.ToString(), tok.Lexeme, value})
	}
	return rows
}

// SymbolTable prints the variables of an evaluator, sorted by name
type SymbolTable evaluator.SymbolMap

func (s SymbolTable) Headers() []string {
	return []string{"name", "kind", "value"}
}

func (s SymbolTable) Values() [][]string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(s))
	for _, name := range names {
		rows = append(rows, []string{name, s[name].Kind().String(), s[name].String()})
	}
	return rows
}
