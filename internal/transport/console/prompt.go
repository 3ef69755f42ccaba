package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Prompter reads bounded integers from a line-oriented console. Lines are
// read in a background goroutine so a pending prompt can be interrupted
// by context cancellation.
type Prompter struct {
	in  io.Reader
	out io.Writer

	startOnce sync.Once
	lines     chan string
	readErr   error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan string),
	}
}

// readLines runs until the input is exhausted. readErr is written before
// lines is closed, so readers see it after the channel drains.
func (that *Prompter) readLines() {
	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	that.readErr = scanner.Err()
	close(that.lines)
}

// ReadInt - asks until a number in [minValue, maxValue] is entered.
func (that *Prompter) ReadInt(ctx context.Context, label string, minValue, maxValue int) (int, error) {
	that.startOnce.Do(func() {
		go that.readLines()
	})

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("prompt %q interrupted: %w", label, err)
		}

		that.Printf("%s", label)

		var line string
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("prompt %q interrupted: %w", label, ctx.Err())
		case text, ok := <-that.lines:
			if !ok {
				if that.readErr != nil {
					return 0, fmt.Errorf("%w: %w", apperror.ErrInputClosed, that.readErr)
				}
				return 0, apperror.ErrInputClosed
			}
			line = text
		}

		num, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			that.Println("[!] Could not convert input to a number!")
			continue
		}

		if num < minValue || num > maxValue {
			that.Printf("[!] The number must be between %d and %d!\n", minValue, maxValue)
			continue
		}

		return num, nil
	}
}

// Printf and Println ignore write errors, the console is best effort.
func (that *Prompter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Prompter) Println(args ...any) {
	_, _ = fmt.Fprintln(that.out, args...)
}
