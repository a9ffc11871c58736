package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taskcli/tasks/pkg/config"
	"github.com/taskcli/tasks/pkg/llm"
	"github.com/taskcli/tasks/pkg/task"
)

var createFile string

var createCmd = &cobra.Command{
	Use:   "create <content>",
	Short: "Create a new task",
	Long: `Create a new task and append it to the target file.

The raw content is sent to a language model that rewrites it into a
clearer checklist item; on any API failure the raw content is kept.

Content that begins with a dash must be separated with --:

  tasks create -- "-urgent: call the bank"`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createFile, "file", "", "Path of the file to use. Overrides the global config.")
}

// resolveTargetPath picks the file new tasks go to: the --file flag wins,
// then the configured global file.
func resolveTargetPath(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.GlobalFile != "" {
		return cfg.GlobalFile, nil
	}
	return "", errors.New("no file path provided")
}

func runCreate(cmd *cobra.Command, args []string) error {
	content := args[0]

	// Best-effort: a .env in the working directory may carry the API key.
	_ = godotenv.Load()

	configPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath, logger)
	if err != nil {
		return err
	}

	path, err := resolveTargetPath(createFile, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Please specify a file with --file <PATH>, or set a global default with:")
		fmt.Fprintln(os.Stderr, "  tasks config --global-file <PATH>")
		return err
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return errors.New("OPENROUTER_API_KEY environment variable not set")
	}

	fmt.Println("🤖 Calling LLM to improve the task... please wait.")

	improved := task.Fallback(content)
	result, err := llm.New(apiKey, logger).Improve(context.Background(), content)
	if err != nil {
		logger.Warn("failed to call LLM API, using original task", zap.Error(err))
	} else {
		improved = result.Text
	}

	line := task.FormatLine(improved, time.Now())
	if err := task.Append(path, line); err != nil {
		return err
	}

	fmt.Printf("\n✅ Successfully added improved task to %s\n", path)
	fmt.Printf("   > %s\n", improved)
	return nil
}
