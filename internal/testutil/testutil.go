package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/emotion-dashboard/pkg/clock"
)

// SetUpFromFileContent creates a temp file based on the given file content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	dir := t.TempDir()

	fileOut := filepath.Join(dir, filename)
	err := os.WriteFile(fileOut, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	return fileOut
}

// FreezeClockAt stops the time for the duration of the current test.
func FreezeClockAt(t *testing.T, at time.Time) *clock.FrozenClock {
	frozen := clock.FreezeAt(at)
	t.Cleanup(clock.Unfreeze)
	return frozen
}

// FreezeClockAtTime is FreezeClockAt for a time of day (on an arbitrary date).
func FreezeClockAtTime(t *testing.T, hour, min int) *clock.FrozenClock {
	return FreezeClockAt(t, time.Date(2023, 1, 1, hour, min, 0, 0, time.Local))
}
