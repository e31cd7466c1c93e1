package android

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nopeforge/nopegl-hooks/hooks/definitions"
)

func TestExecRunnerCapturesStdout(t *testing.T) {
	output, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "printf 'List of devices attached\\n'; echo noise >&2")
	require.NoError(t, err)
	assert.Equal(t, "List of devices attached\n", output)
}

func TestExecRunnerPassesArgsVerbatim(t *testing.T) {
	arg := `'a b' "c" $HOME; d`
	output, err := ExecRunner{}.Run(context.Background(), "sh", "-c", `printf '%s' "$1"`, "sh", arg)
	require.NoError(t, err)
	assert.Equal(t, arg, output)
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo 'error: device offline' >&2; exit 3")
	require.Error(t, err)

	var toolErr *definitions.ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "sh", toolErr.Tool)
	assert.Equal(t, 3, toolErr.ExitCode)
	assert.Equal(t, "error: device offline\n", toolErr.Stderr)
}

func TestExecRunnerMissingTool(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), "nopegl-no-such-bridge-tool")
	require.Error(t, err)

	var toolErr *definitions.ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, -1, toolErr.ExitCode)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}
