package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// lineSource delivers input lines from a reader. The REPL and the prompt
// helpers share one source so no line is buffered twice.
type lineSource struct {
	lines <-chan string
}

// newLineSource scans r in a goroutine that stops at EOF or when ctx is done.
func newLineSource(ctx context.Context, r io.Reader) *lineSource {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return &lineSource{lines: ch}
}

// Next blocks for the next line. It returns io.EOF once input is exhausted
// and ctx.Err() on cancellation.
func (s *lineSource) Next(ctx context.Context) (string, error) {
	select {
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// GetSimpleText prints a prompt to w and reads one trimmed line from src.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(ctx context.Context, src *lineSource, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := src.Next(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
