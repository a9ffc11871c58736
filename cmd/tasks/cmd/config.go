package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskcli/tasks/pkg/config"
)

var configGlobalFile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long:  `Persist settings shared by all invocations, such as the global task file.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&configGlobalFile, "global-file", "", "Sets the global file path for all tasks.")
	configCmd.MarkFlagRequired("global-file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	configPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath, logger)
	if err != nil {
		return err
	}

	cfg.GlobalFile = configGlobalFile
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("Global file path successfully set to: %s\n", cfg.GlobalFile)
	return nil
}
