package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "minsh.log"
)

// ShellName is the name the shell reports in diagnostics.
const ShellName = "minsh"

type Configuration struct {
	configFs afero.Fs

	// Prompt is printed before every read.
	Prompt string `json:"prompt" validate:"required"`

	// ColorPrompt renders the prompt in color on capable terminals.
	ColorPrompt bool `json:"color_prompt"`

	// LogSession writes a structured log of the session to the app log.
	LogSession bool `json:"log_session"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the configuration used when no config directory exists.
func Default() *Configuration {
	return &Configuration{
		configFs:    afero.NewMemMapFs(),
		Prompt:      ShellName + "> ",
		ColorPrompt: true,
		LogSession:  false,
	}
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the application log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_RDONLY, 0600)
}
