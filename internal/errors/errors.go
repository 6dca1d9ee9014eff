package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/habitual/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Report logs err under op and writes the formatted message to w.
// It is a no-op for a nil error and returns whether anything was reported.
func Report(w io.Writer, op string, err error) bool {
	if err == nil {
		return false
	}
	logger.Error("Operation failed", "op", op, "error", err)
	fmt.Fprintln(w, Format(err))
	return true
}

// Fatal reports err on stderr and exits the program with exit code 1
func Fatal(err error) {
	if Report(os.Stderr, "command", err) {
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
