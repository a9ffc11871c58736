// Package task builds markdown task lines and appends them to the target
// file.
package task

import (
	"fmt"
	"os"
	"time"
)

// timeLayout renders timestamps as DD/MM/YYYY HH:MM.
const timeLayout = "02/01/2006 15:04"

// FormatLine joins the task content with a clock-emoji timestamp.
func FormatLine(content string, now time.Time) string {
	return fmt.Sprintf("%s - 🕓%s", content, now.Format(timeLayout))
}

// Fallback builds the locally formatted task line used when the remote
// service cannot be reached at all.
func Fallback(raw string) string {
	return fmt.Sprintf("- [ ] 📋%s", raw)
}

// Append writes line and a trailing newline to the end of the file at
// path, creating it if absent. O_APPEND keeps appends from separate
// invocations line-atomic for lines this short.
func Append(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open task file: %w", err)
	}

	if _, err := fmt.Fprintln(f, line); err != nil {
		f.Close()
		return fmt.Errorf("failed to append task: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close task file: %w", err)
	}
	return nil
}
