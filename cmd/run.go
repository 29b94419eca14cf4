package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/abhii767/Minishell/core/execute"
	"github.com/abhii767/Minishell/core/expand"
	"github.com/abhii767/Minishell/core/interp"
	"github.com/abhii767/Minishell/core/platform"
	"github.com/abhii767/Minishell/core/shellparse"
)

// runCmd executes a single command line non-interactively.
var runCmd = &cobra.Command{
	Use:   "run -- COMMAND [ARG...]",
	Short: "Run one command line through the translation pipeline.",
	Long: `Translates COMMAND to the native equivalent for this platform,
expands wildcards, runs it in the host shell, and exits with the
child's status.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		plat := platform.Detect()
		it := &interp.Interpreter{
			Platform: plat,
			Expander: expand.New(afero.NewOsFs()),
			Executor: &execute.Executor{
				Platform:   plat,
				PosixShell: cfg.PosixShell,
				Stdin:      os.Stdin,
				Stdout:     os.Stdout,
				Stderr:     os.Stderr,
			},
		}

		outcome := it.Run(cmd.Context(), shellparse.Join(args))
		switch outcome.Status {
		case execute.Failed:
			os.Exit(outcome.ExitCode)
		case execute.LaunchError:
			return outcome.Err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
