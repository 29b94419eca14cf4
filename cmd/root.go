package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhii767/Minishell/core"
	"github.com/abhii767/Minishell/core/config"
)

var cfgPath string

// loadConfig loads the configuration, falling back to the embedded default
// when none has been written yet.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(configDir())

	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

func configDir() string {
	if cfgPath != "" {
		return cfgPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultDirName
	}
	return filepath.Join(home, config.DefaultDirName)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "minishell",
	Short: "A tiny cross-platform shell",
	Long: `An interactive shell that translates Unix-style verbs into the
native commands of the host OS, expands wildcards, and runs them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		shell, err := core.NewShell(cfg)
		if err != nil {
			return err
		}
		defer shell.Close()

		stop := drainInterrupts()
		defer stop()

		return shell.Run(context.Background())
	},
}

// drainInterrupts keeps the shell alive on Ctrl-C while a child runs; the
// child shares the terminal's process group and gets the signal itself. The
// returned stop function unregisters the handler and waits for the drain
// goroutine to finish.
func drainInterrupts() (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range sigs {
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(sigs)
		<-done
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory (default ~/.minishell)")
}
