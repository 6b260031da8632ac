package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"tamalife/internal/game"
	"tamalife/internal/pet"
)

// Console renders the pet as plain text, one screen per command.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Render(s pet.Snapshot) {
	fmt.Fprintln(c.out, renderTitle(s))
	fmt.Fprintln(c.out, renderStats(s))
	fmt.Fprintln(c.out, "Status: "+s.Status)
	if emoji, msg, ok := s.GetEventDisplay(); ok {
		fmt.Fprintf(c.out, "%s %s\n", emoji, msg)
	}
	fmt.Fprint(c.out, "> ")
}

func (c *Console) Message(text string) {
	fmt.Fprintln(c.out, text)
}

// LineReader reads commands from a stream on a background goroutine so a
// blocked read never holds up cancellation.
type LineReader struct {
	lines chan string
	errs  chan error
}

func NewLineReader(r io.Reader) *LineReader {
	lr := &LineReader{lines: make(chan string), errs: make(chan error, 1)}
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lr.lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			lr.errs <- err
			return
		}
		lr.errs <- io.EOF
	}()
	return lr
}

func (lr *LineReader) ReadCommand(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-lr.lines:
		return line, nil
	case err := <-lr.errs:
		return "", err
	}
}

var (
	_ game.Renderer      = (*Console)(nil)
	_ game.CommandReader = (*LineReader)(nil)
)
