package repl

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/mal"
)

func TestLineReader(t *testing.T) {
	var prompts bytes.Buffer
	lr := NewLineReader(strings.NewReader("a\r\n\nb"), &prompts)

	line, err := lr.Prompt("> ")
	require.NoError(t, err)
	assert.Equal(t, "a", line)

	line, err = lr.Prompt("> ")
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = lr.Prompt("> ")
	require.NoError(t, err)
	assert.Equal(t, "b", line)

	_, err = lr.Prompt("> ")
	assert.Equal(t, io.EOF, err)

	assert.Equal(t, "> > > > ", prompts.String())
}

func TestRun(t *testing.T) {
	in := strings.Join([]string{
		`(+ 1 2 3)`,
		`(/ 1 0)`,
		`undefined_sym`,
		``,
		`(def! x 5)`,
		`x`,
		`(* x 2) ; comment`,
		`(1 2`,
		`"abc`,
	}, "\n")

	var out bytes.Buffer
	err := Run(NewLineReader(strings.NewReader(in), nil), &out, mal.New(), "user> ")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		`6`,
		`error: division by zero`,
		`error: unbound symbol 'undefined_sym'`,
		`5`,
		`5`,
		`10`,
		`error: cannot apply 1`,
		`unbalanced string`,
		``,
	}, "\n"), out.String())
}

func TestRunEmptyInput(t *testing.T) {
	var out bytes.Buffer
	err := Run(NewLineReader(strings.NewReader(""), nil), &out, mal.New(), "user> ")
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

type failingPrompter struct {
	err error
}

func (fp failingPrompter) Prompt(string) (string, error) {
	return "", fp.err
}

func TestRunPrompterError(t *testing.T) {
	errBroken := errors.New("broken terminal")

	var out bytes.Buffer
	err := Run(failingPrompter{errBroken}, &out, mal.New(), "user> ")
	assert.Equal(t, errBroken, err)
}
