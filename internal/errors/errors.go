package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/offline"
	"github.com/hakanduyar/goal-compass-daily/internal/session"
	"github.com/hakanduyar/goal-compass-daily/internal/storage"
)

// hints maps domain sentinel errors to a follow-up the user can act on.
var hints = []struct {
	target error
	hint   string
}{
	{storage.ErrNotInitialized, "run 'compass init' first"},
	{session.ErrSessionActive, "close the other compass session or wait for it to exit"},
	{models.ErrTransferPlusLocked, "holiday days do not accept TransferPlus hours"},
	{models.ErrDayOutOfRange, "use 'compass show' to list valid days"},
	{offline.ErrNotQueued, "the change is kept locally; run 'compass doctor' to check the queue"},
}

// Hint returns the user-facing follow-up for a known error, or "".
func Hint(err error) string {
	for _, h := range hints {
		if stderrors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// Format formats an error message with a consistent "Error: " prefix.
// Known errors get their hint appended on a second line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	if hint := Hint(err); hint != "" {
		return fmt.Sprintf("Error: %v\n  hint: %s", err, hint)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
