package shell

import (
	"bufio"
	"io"
	"os"

	"github.com/chzyer/readline"
)

// LineReader supplies one line of operator input per call. Implementations
// report io.EOF when the operator is done (Ctrl+D, closed stdin).
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// ReadlineReader is the interactive implementation, with line editing and
// history.
type ReadlineReader struct {
	rl *readline.Instance
}

func NewReadlineReader() (*ReadlineReader, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl}, nil
}

func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// StdinReader is the fallback for non-interactive use (piped input,
// confirmation prompts in CLI mode).
type StdinReader struct {
	out     io.Writer
	scanner *bufio.Scanner
}

func NewStdinReader() *StdinReader {
	return &StdinReader{
		out:     os.Stdout,
		scanner: bufio.NewScanner(os.Stdin),
	}
}

func (r *StdinReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *StdinReader) Close() error {
	return nil
}
