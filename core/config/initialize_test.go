package config

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	cfg, err := Initialize(tempDir, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "minsh> ", cfg.Prompt)
	assert.True(t, cfg.LogSession)

	t.Run("Reload", func(t *testing.T) {
		reloaded, err := Load(tempDir)
		assert.Nil(t, err)
		assert.Equal(t, cfg.Prompt, reloaded.Prompt)
	})

	t.Run("OpenAppLog", func(t *testing.T) {
		fd, err := cfg.OpenAppLog()
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("RefuseOverwrite", func(t *testing.T) {
		_, err := Initialize(tempDir, log.New(io.Discard, "", 0))
		assert.NotNil(t, err)
	})
}
