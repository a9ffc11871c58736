package task

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		now     time.Time
		want    string
	}{
		{
			name:    "improved content",
			content: "- [ ] 📋Buy milk from the store",
			now:     time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC),
			want:    "- [ ] 📋Buy milk from the store - 🕓07/03/2026 09:05",
		},
		{
			name:    "single digit day and month are zero padded",
			content: "x",
			now:     time.Date(2026, time.January, 2, 3, 4, 0, 0, time.UTC),
			want:    "x - 🕓02/01/2026 03:04",
		},
		{
			name:    "midnight",
			content: "x",
			now:     time.Date(2026, time.December, 31, 0, 0, 59, 0, time.UTC),
			want:    "x - 🕓31/12/2026 00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLine(tt.content, tt.now)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	got := Fallback("buy milk")
	want := "- [ ] 📋buy milk"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")

	if err := Append(path, "- [ ] one"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "- [ ] one\n" {
		t.Errorf("unexpected file contents: %q", data)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")

	if err := Append(path, "first"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	if err := Append(path, "second"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("expected two lines in call order, got %q", data)
	}
}

func TestAppendDoesNotTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")
	os.WriteFile(path, []byte("existing line\n"), 0644)

	if err := Append(path, "new line"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "existing line\nnew line\n" {
		t.Errorf("existing content not preserved: %q", data)
	}
}
