package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/abhii767/Minishell/core/config"
)

// initCmd writes the default configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		_, err := config.Initialize(configDir(), logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
