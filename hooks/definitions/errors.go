package definitions

import (
	"fmt"
	"strings"
)

// ExternalToolError reports a bridge tool invocation that could not be
// launched or exited with a non-zero status. ExitCode is -1 when the
// process never ran.
type ExternalToolError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExternalToolError) Error() string {
	cmd := strings.TrimSpace(e.Tool + " " + strings.Join(e.Args, " "))
	if e.ExitCode < 0 {
		return fmt.Sprintf("run %q: %v", cmd, e.Err)
	}

	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("run %q: exit status %d", cmd, e.ExitCode)
	}
	return fmt.Sprintf("run %q: exit status %d: %s", cmd, e.ExitCode, stderr)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}
