// Package shell implements the read-tokenize-execute loop: read one line,
// split it into whitespace-delimited words, run the first word as an
// external program with the rest as arguments, foreground or background.
package shell

import (
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"minsh/core/config"
)

// Streams are the shell's standard streams. Spawned children inherit them
// along with the environment and working directory; the shell treats all of
// these as ambient process state it never manages itself.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Shell struct {
	config  *config.Configuration
	streams Streams
	log     *zap.Logger

	sessionID string
}

var promptColor = color.New(color.FgGreen, color.Bold)

func New(cfg *config.Configuration, streams Streams, log *zap.Logger) *Shell {
	return &Shell{
		config:    cfg,
		streams:   streams,
		log:       log,
		sessionID: uuid.NewString(),
	}
}

func (s *Shell) prompt() string {
	if s.config.ColorPrompt {
		return promptColor.Sprint(s.config.Prompt)
	}
	return s.config.Prompt
}
