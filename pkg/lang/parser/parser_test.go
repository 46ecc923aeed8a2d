/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/common/parse"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/ast"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/types"
	"github.com/andreyvit/diff"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *ast.ProgramNode {
	t.Helper()

	tokens, err := tokenizer.Tokenize(input)
	require.NoError(t, err)

	program, err := Parse(tokens)
	require.NoError(t, err, "parsing %q", input)

	return program
}

func parseError(t *testing.T, input string) *parse.SyntaxError {
	t.Helper()

	tokens, err := tokenizer.Tokenize(input)
	require.NoError(t, err)

	program, err := Parse(tokens)
	require.Error(t, err, "parsing %q", input)
	assert.Nil(t, program)

	var syntaxError *parse.SyntaxError
	require.True(t, errors.As(err, &syntaxError), "wanted *parse.SyntaxError, got %T", err)

	return syntaxError
}

func TestParseNumbers(t *testing.T) {
	for _, s := range []string{"1", "22", "333", "(1)", "((22))"} {
		program := mustParse(t, s)
		require.Len(t, program.Statements, 1)

		n, ok := program.Statements[0].(*ast.NumberNode)
		require.True(t, ok, "wanted *ast.NumberNode, got %T", program.Statements[0])
		assert.Equal(t, types.Int, n.Val.Kind())
		assert.Equal(t, strings.Trim(s, "()"), n.Val.String())
	}

	program := mustParse(t, "2.0")
	n := program.Statements[0].(*ast.NumberNode)
	assert.Equal(t, types.MakeFloat(2), n.Val)
}

func TestParseExpressions(t *testing.T) {
	cases := []struct {
		input  string
		expect string
	}{
		{"2*4", "(program (* 2 4))"},
		{"2*4/6", "(program (/ (* 2 4) 6))"},
		{"1+2*4", "(program (+ 1 (* 2 4)))"},
		{"1-2-3", "(program (- (- 1 2) 3))"},
		{"1+(2+3)*4", "(program (+ 1 (* (+ 2 3) 4)))"},
		{"(2+3)", "(program (+ 2 3))"},
		{"-3", "(program (negate 3))"},
		{"--3", "(program (negate (negate 3)))"},
		{"-2*3", "(program (* (negate 2) 3))"},
		{"-(2*3)", "(program (negate (* 2 3)))"},
		{"!x", "(program (not x))"},
		{"!!true", "(program (not (not true)))"},
		{"a<b<c", "(program (< (< a b) c))"},
		{"a <= b == c > d", "(program (> (== (<= a b) c) d))"},
		{"1 + 2 < 3 * 4", "(program (< (+ 1 2) (* 3 4)))"},
		{"a || b && c", "(program (|| a (&& b c)))"},
		{"a && b || c", "(program (|| (&& a b) c))"},
		{"a || b || c", "(program (|| (|| a b) c))"},
		{"1 + 2 < 3 && x == 4", "(program (&& (< (+ 1 2) 3) (== x 4)))"},
		{"!(x >= 1) && y != 2.5", "(program (&& (not (>= x 1)) (!= y 2.5)))"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, ast.Sexp(mustParse(t, c.input)), "parsing %q", c.input)
	}
}

func TestParseStatements(t *testing.T) {
	cases := []struct {
		input  string
		expect string
	}{
		{"1+(2+3)*4", "(program (+ 1 (* (+ 2 3) 4)))"},
		{"print 2*4", "(program (print (* 2 4)))"},
		{"x=3", "(program (assign x 3))"},
		{"x = y + 1", "(program (assign x (+ y 1)))"},
		{"print 1; print 2", "(program (print 1) (print 2))"},
		{"print 1;", "(program (print 1))"},
		{"x = 1; y = x * 2.5; print -y", "(program (assign x 1) (assign y (* x 2.5)) (print (negate y)))"},
		{"", "(program)"},
		{"  \n ", "(program)"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, ast.Sexp(mustParse(t, c.input)), "parsing %q", c.input)
	}
}

func TestParseAssignShape(t *testing.T) {
	program := mustParse(t, "x=3")
	require.Len(t, program.Statements, 1)

	assign, ok := program.Statements[0].(*ast.AssignNode)
	require.True(t, ok)
	assert.Equal(t, 1, assign.Pos())

	target, ok := assign.Target.(*ast.IdentifierNode)
	require.True(t, ok)
	assert.Equal(t, "x", target.Name)

	value, ok := assign.Value.(*ast.NumberNode)
	require.True(t, ok)
	assert.Equal(t, types.MakeInt(3), value.Val)
}

func TestParsePositions(t *testing.T) {
	program := mustParse(t, "print 1 + 2")
	p := program.Statements[0].(*ast.PrintNode)
	assert.Equal(t, 0, p.Pos())

	sum := p.Value.(*ast.BinaryOpNode)
	assert.Equal(t, 8, sum.Pos())
	assert.Equal(t, 6, sum.Left.Pos())
	assert.Equal(t, 10, sum.Right.Pos())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input    string
		position int
		tag      string
	}{
		{"(1+2", 4, ""},
		{")", 0, ")"},
		{"1 +", 3, ""},
		{"print", 5, ""},
		{"print 1 print 2", 8, "print"},
		{"a = b = c", 6, "="},
		{"1 2", 2, "number"},
		{"if x then y", 0, "if"},
		{"x = ;", 4, ";"},
		{"print 1;;", 8, ";"},
		{"(1 + 2))", 7, ")"},
		{"*2", 0, "*"},
	}

	for _, c := range cases {
		err := parseError(t, c.input)
		assert.Equal(t, c.position, err.Position(), "position for %q", c.input)
		assert.Equal(t, c.tag, err.Tag, "tag for %q", c.input)
		assert.Contains(t, err.Error(), fmt.Sprintf("at position %d", c.position))
	}
}

func TestParseMissingSentinel(t *testing.T) {
	tokens, err := tokenizer.Tokenize("1 + 2")
	require.NoError(t, err)

	_, err = Parse(tokens[:len(tokens)-1])
	var syntaxError *parse.SyntaxError
	require.True(t, errors.As(err, &syntaxError))
	assert.Equal(t, 5, syntaxError.Position())

	_, err = Parse(nil)
	assert.Error(t, err)
}

func TestParseDoesNotConsumeSentinel(t *testing.T) {
	tokens, err := tokenizer.Tokenize("x = 1; print x")
	require.NoError(t, err)

	p := New(tokens, zerolog.Nop())
	_, err = p.Parse()
	require.NoError(t, err)

	assert.Equal(t, len(tokens)-1, p.pos)
	assert.True(t, p.peek().IsEOF())
}

func TestParseIsRepeatable(t *testing.T) {
	tokens, err := tokenizer.Tokenize("print (1 + 2) * -x")
	require.NoError(t, err)

	first, err := Parse(tokens)
	require.NoError(t, err)
	second, err := Parse(tokens)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseTrace(t *testing.T) {
	level := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(level)

	var buf bytes.Buffer
	tokens, err := tokenizer.Tokenize("1 + 2")
	require.NoError(t, err)

	_, err = New(tokens, zerolog.New(&buf).Level(zerolog.TraceLevel)).Parse()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"rule":"factor"`)
	assert.Contains(t, buf.String(), `"rule":"program"`)
}

func TestDepth(t *testing.T) {
	cases := map[string]int{
		"1 + 2":       0,
		"(1)":         1,
		"((1 + (2)))": 3,
		"--x":         2,
		"1 - -x":      1,
		"!!!x":        3,
		"-(-(-(1)))":  6,
		"(1) - (2)":   1,
	}

	for input, want := range cases {
		tokens, err := tokenizer.Tokenize(input)
		require.NoError(t, err)
		assert.Equal(t, want, Depth(tokens), "depth of %q", input)
	}
}

func TestParse(t *testing.T) {
	testDirectory, err := filepath.Abs("../../../test/parsing/program")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))
	require.NoError(t, err)
	require.NotEmpty(t, tests)

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			file, err := os.Open(test)
			if err != nil {
				t.Fatalf("Error opening test: %s", test)
			}
			defer file.Close()

			scanner := bufio.NewScanner(file)

			shouldPass := false
			scanner.Scan()
			if strings.ToUpper(scanner.Text()) == "PASS" {
				shouldPass = true
			}

			actual := ""
			for scanner.Scan() {
				var program *ast.ProgramNode

				tokens, err := tokenizer.Tokenize(scanner.Text())
				if err == nil {
					program, err = Parse(tokens)
				}

				if shouldPass && err != nil {
					t.Error(err)
					continue
				}
				if !shouldPass && err == nil {
					t.Errorf("Expected program to fail: %s", scanner.Text())
					continue
				}

				if shouldPass {
					actual += ast.ASTToString(program)
				}
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}
