package shell

import (
	"errors"
	"fmt"
	"os/exec"

	"minsh/core/config"
)

// Outcome tells the REPL whether to keep going after a command.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeTerminate
)

// Exec runs a non-empty token list. The first token is the program name,
// resolved through the inherited $PATH; the full token list becomes the
// argument vector. "exit" and "quit" are intercepted and terminate the
// REPL without spawning anything.
//
// A spawn failure is reported and the REPL continues; a child that ran and
// exited non-zero or died by signal is not a shell error.
func (s *Shell) Exec(tokens []string, background bool) Outcome {
	switch tokens[0] {
	case "exit", "quit":
		return OutcomeTerminate
	}

	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Stdin = s.streams.Stdin
	cmd.Stdout = s.streams.Stdout
	cmd.Stderr = s.streams.Stderr

	if background {
		if err := cmd.Start(); err != nil {
			s.report(err)
		}
		// The child is left running unsupervised and is never waited on.
		// Known limitation: on some systems it lingers as a zombie until
		// the shell exits.
		return OutcomeContinue
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			s.report(err)
		}
	}
	return OutcomeContinue
}

// report prints an iteration-local diagnostic in the form
// "minsh: <system error>".
func (s *Shell) report(err error) {
	fmt.Fprintf(s.streams.Stderr, "%s: %v\n", config.ShellName, err)
}
