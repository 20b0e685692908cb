package console

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type line struct {
	text string
	err  error
}

// readLines - feeds lines from reader into the returned channel until the input ends or ctx is done.
// The last value carries the read error, io.EOF included. Lines have no length limit.
func readLines(ctx context.Context, reader io.Reader) <-chan line {
	lines := make(chan line)

	send := func(next line) bool {
		select {
		case lines <- next:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(lines)

		buffered := bufio.NewReader(reader)
		for {
			text, err := buffered.ReadString('\n')
			if text != "" || err == nil {
				if !send(line{text: strings.TrimRight(text, "\r\n")}) {
					return
				}
			}

			if err != nil {
				send(line{err: err})
				return
			}
		}
	}()

	return lines
}
