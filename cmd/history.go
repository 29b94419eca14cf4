package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/abhii767/Minishell/core/config"
	"github.com/abhii767/Minishell/core/history"
)

var historyClear bool

// historyCmd inspects the persisted command history.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the persisted command history.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		home, err := os.UserHomeDir()
		if err != nil {
			home = ""
		}

		h := history.New(afero.NewOsFs(), config.ExpandHome(cfg.HistoryFile, home), cfg.HistoryMax)
		if err := h.Load(); err != nil {
			return err
		}

		if historyClear {
			h.Clear()
			return h.Save()
		}

		for i, line := range h.Entries() {
			fmt.Fprintf(cmd.OutOrStdout(), "% 5d  %s\n", i+1, line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all persisted history entries")
	rootCmd.AddCommand(historyCmd)
}
