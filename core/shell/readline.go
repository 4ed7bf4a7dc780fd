package shell

import (
	"github.com/abiosoft/readline"
)

// readlineSource provides line editing and interrupt handling when the
// shell is attached to a terminal.
type readlineSource struct {
	rl *readline.Instance
}

func newReadlineSource(streams Streams) (*readlineSource, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(streams.Stdin),
		Stdout: streams.Stdout,
		Stderr: streams.Stderr,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &readlineSource{rl: rl}, nil
}

func (r *readlineSource) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		// Interrupt clears the line.
		return "", nil
	}
	return line, err
}

func (r *readlineSource) Close() error {
	return r.rl.Close()
}

// RunInteractive is Run with readline as the line source. Only call when
// stdin is a terminal.
func (s *Shell) RunInteractive() error {
	src, err := newReadlineSource(s.streams)
	if err != nil {
		return err
	}
	return s.repl(src)
}
