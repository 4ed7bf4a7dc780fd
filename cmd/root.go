package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"minsh/core/config"
	"minsh/core/logger"
	"minsh/core/shell"
)

var cfgPath string

// loadConfig reads the configuration directory, falling back to the
// built-in defaults when none has been initialized.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "minsh",
	Short: "Minimal interactive shell",
	Long: `A minimal interactive command shell: reads a line, splits it on
whitespace and runs the first word as a program, in the foreground or (with a
trailing &) in the background. Type "exit" or "quit" to leave.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		sessionLog := zap.NewNop()
		if configuration.LogSession {
			fd, err := configuration.OpenAppLog()
			if err != nil {
				return err
			}
			defer fd.Close()
			sessionLog = logger.New(fd)
			defer sessionLog.Sync()
		}

		sh := shell.New(configuration, shell.Streams{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}, sessionLog)

		if isatty.IsTerminal(os.Stdin.Fd()) {
			return sh.RunInteractive()
		}
		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
