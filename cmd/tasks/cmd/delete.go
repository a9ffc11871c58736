package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a task (not yet implemented)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Placeholder: deletion semantics are not defined yet.
		fmt.Println("Delete Task")
	},
}
