// Package repl drives the read-eval-print loop over a line source.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter returns one line of input per call, and io.EOF once the input is
// exhausted.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Evaluator runs one read-eval-print cycle. An empty result prints nothing.
type Evaluator interface {
	Rep(line string) (string, error)
}

// LineReader is a Prompter over a plain io.Reader.
type LineReader struct {
	r *bufio.Reader
	w io.Writer
}

// NewLineReader creates a LineReader. Prompts are written to w unless it is
// nil.
func NewLineReader(r io.Reader, w io.Writer) *LineReader {
	return &LineReader{r: bufio.NewReader(r), w: w}
}

// Prompt writes prompt and reads the next line without its line ending.
func (lr *LineReader) Prompt(prompt string) (string, error) {
	if lr.w != nil && prompt != "" {
		if _, err := io.WriteString(lr.w, prompt); err != nil {
			return "", err
		}
	}

	line, err := lr.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

// Run reads lines from p until the end of the input, evaluates each one with
// ev and writes results and failures to w. Failures never stop the loop.
func Run(p Prompter, w io.Writer, ev Evaluator, prompt string) error {
	for {
		line, err := p.Prompt(prompt)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		out, err := ev.Rep(line)
		if err != nil {
			if _, err := fmt.Fprintf(w, "error: %v\n", err); err != nil {
				return err
			}
			continue
		}
		if out == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
}
