package android

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nopeforge/nopegl-hooks/constants"
	"github.com/nopeforge/nopegl-hooks/hooks/definitions"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	ret := m.Called(ctx, name, args)
	return ret.String(0), ret.Error(1)
}

func TestParseSessions(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []definitions.Session
	}{
		{
			name:   "single emulator",
			output: "List of devices attached\nEMULATOR123 device product:sdk\n",
			want:   []definitions.Session{{ID: "EMULATOR123", Description: "device product:sdk"}},
		},
		{
			name:   "header only",
			output: "List of devices attached\n\n",
			want:   []definitions.Session{},
		},
		{
			name:   "empty output",
			output: "",
			want:   []definitions.Session{},
		},
		{
			name: "order and inner whitespace kept",
			output: "List of devices attached\n" +
				"NAAIB700A57858C        device usb:1-1 product:walleye model:Pixel_2 transport_id:3\n" +
				"\n" +
				"192.168.1.20:5555\tunauthorized  transport_id:4\r\n" +
				"emulator-5554 offline\n",
			want: []definitions.Session{
				{ID: "NAAIB700A57858C", Description: "device usb:1-1 product:walleye model:Pixel_2 transport_id:3"},
				{ID: "192.168.1.20:5555", Description: "unauthorized  transport_id:4"},
				{ID: "emulator-5554", Description: "offline"},
			},
		},
		{
			name:   "id without description",
			output: "List of devices attached\nR58M123\n",
			want:   []definitions.Session{{ID: "R58M123", Description: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSessions(tt.output))
		})
	}
}

func TestListSessions(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", mock.Anything, "adb", []string{"devices", "-l"}).
		Return("List of devices attached\nEMULATOR123 device product:sdk\n", nil).Once()

	controller := NewADBController(WithRunner(runner))
	sessions, err := controller.ListSessions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []definitions.Session{{ID: "EMULATOR123", Description: "device product:sdk"}}, sessions)
	runner.AssertExpectations(t)
}

func TestListSessionsToolFailure(t *testing.T) {
	toolErr := &definitions.ExternalToolError{Tool: "adb", Args: []string{"devices", "-l"}, ExitCode: 1, Stderr: "daemon not running"}

	runner := new(mockRunner)
	runner.On("Run", mock.Anything, "adb", []string{"devices", "-l"}).Return("", toolErr).Once()

	controller := NewADBController(WithRunner(runner))
	sessions, err := controller.ListSessions(context.Background())

	assert.Nil(t, sessions)
	assert.Same(t, toolErr, err)
	runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestListSessionsUsesConfiguredTool(t *testing.T) {
	runner := &recordingRunner{replies: []reply{{output: "List of devices attached\n"}}}

	controller := NewADBController(WithRunner(runner), WithADBPath("/opt/android/platform-tools/adb"))
	sessions, err := controller.ListSessions(context.Background())
	require.NoError(t, err)

	assert.Empty(t, sessions)
	assert.Equal(t, []string{"/opt/android/platform-tools/adb devices -l"}, runner.commandLines())
}

func TestGetSessionInfoIsConstant(t *testing.T) {
	controller := NewADBController(WithRunner(&recordingRunner{}))
	want := definitions.SessionInfo{Backend: "opengles", System: "Android"}

	for _, id := range []string{"", "EMULATOR123", "192.168.1.20:5555", "does-not-exist"} {
		assert.Equal(t, want, controller.GetSessionInfo(id), id)
	}
	assert.Equal(t, constants.AndroidSessionInfo, want)
}

func TestCheckTool(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", mock.Anything, "sh", []string{"version"}).
		Return("Android Debug Bridge version 1.0.41\nVersion 34.0.5-10900879\n", nil).Once()

	controller := NewADBController(WithRunner(runner), WithADBPath("sh"))
	version, err := controller.CheckTool(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Android Debug Bridge version 1.0.41", version)
}

func TestCheckToolNotInstalled(t *testing.T) {
	runner := new(mockRunner)

	controller := NewADBController(WithRunner(runner), WithADBPath("nopegl-no-such-bridge-tool"))
	_, err := controller.CheckTool(context.Background())

	var toolErr *definitions.ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, -1, toolErr.ExitCode)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}
