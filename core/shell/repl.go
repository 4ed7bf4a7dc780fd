package shell

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

type replState int

const (
	running replState = iota
	terminated
)

// lineSource yields one line per call, prompting first. It returns io.EOF
// when the input stream is closed, which is distinct from an empty line.
type lineSource interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// plainSource prints the prompt and reads through the byte-at-a-time
// LineReader. Used whenever stdin is not a terminal.
type plainSource struct {
	reader *LineReader
	out    io.Writer
}

func (p *plainSource) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	return p.reader.ReadLine()
}

func (p *plainSource) Close() error { return nil }

// Run drives the REPL over the configured stdin until an exit command or
// end of input, then prints a final newline. The shell's exit status is
// zero in both cases.
func (s *Shell) Run() error {
	return s.repl(&plainSource{
		reader: NewLineReader(s.streams.Stdin),
		out:    s.streams.Stdout,
	})
}

func (s *Shell) repl(src lineSource) error {
	defer src.Close()

	s.log.Info("session start",
		zap.String("session_id", s.sessionID),
		zap.Int("pid", os.Getpid()),
	)

	state := running
	for state == running {
		line, err := src.ReadLine(s.prompt())
		switch {
		case err == io.EOF:
			state = terminated
			continue
		case err != nil:
			s.log.Warn("read error", zap.String("session_id", s.sessionID), zap.Error(err))
			fmt.Fprintln(s.streams.Stdout)
			return err
		case len(line) == 0:
			// Empty line: no diagnostic, no execution, fresh prompt.
			continue
		}

		line, background := TrimBackground(line)
		tokens := Tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		s.log.Info("command",
			zap.String("session_id", s.sessionID),
			zap.Strings("argv", tokens),
			zap.Bool("background", background),
		)

		if s.Exec(tokens, background) == OutcomeTerminate {
			state = terminated
		}
	}

	s.log.Info("session end", zap.String("session_id", s.sessionID))
	fmt.Fprintln(s.streams.Stdout)
	return nil
}
