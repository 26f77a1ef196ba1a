package review

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Run prompts for file numbers read from in until the user quits. End of
// input and cancellation of ctx (an interrupt) end the session the same
// way the quit key does, without an error.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for s.state != StateDone {
		s.out.Prompt(len(s.changes), s.quitKey)

		select {
		case <-ctx.Done():
			s.out.Newline()
			s.Quit()
		case line, ok := <-lines:
			if !ok {
				s.out.Newline()
				s.Quit()
				continue
			}
			s.Submit(ctx, line)
		}
	}
	return nil
}

// readLines delivers lines from r on a channel that closes at end of input.
// Reading happens off the prompt loop so an interrupt is noticed while a
// read is blocked. Lines have no length limit; only a read error or EOF
// closes the channel.
func readLines(r io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(r)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}
