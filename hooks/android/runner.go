package android

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/nopeforge/nopegl-hooks/hooks/definitions"

	"github.com/rs/zerolog/log"
)

// Runner runs an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands as local subprocesses.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	toolErr := &definitions.ExternalToolError{
		Tool:     name,
		Args:     args,
		ExitCode: -1,
		Stderr:   stderr.String(),
		Err:      err,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		toolErr.ExitCode = exitErr.ExitCode()
	}
	return stdout.String(), toolErr
}

// run executes the bridge tool through the controller's runner, tracing the
// invocation under the caller's operation name.
func (r *ADBController) run(ctx context.Context, op string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	runID := r.nextRunID()
	log.Debug().
		Str("run", runID).
		Str("cmd", fmt.Sprintf("[%s] run cmd: %s %s", op, r.adbPath, strings.Join(args, " "))).
		Msg("")

	output, err := r.runner.Run(ctx, r.adbPath, args...)
	if err != nil {
		log.Error().Str("run", runID).Err(err).Msgf("[%s] run cmd failed", op)
		return output, err
	}

	log.Debug().Str("run", runID).Str("output", output).Msgf("[%s] raw output", op)
	return output, nil
}
