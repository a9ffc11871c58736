package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "tasks",
	Version: "0.1",
	Short:   "CLI to manage Markdown Tasks",
	Long: `Tasks appends markdown task lines to a file of your choice.

New tasks are rewritten by a language model into clearer, more actionable
checklist items; if the model cannot be reached the raw text is kept.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	logger = zap.Must(zap.NewProduction())
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(configCmd)
}
