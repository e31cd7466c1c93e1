package android

import (
	"time"

	"github.com/google/uuid"

	"github.com/nopeforge/nopegl-hooks/constants"
)

// ADBController drives nope.gl viewer sessions through the adb bridge tool.
// It holds no per-session state and is safe for concurrent use.
type ADBController struct {
	adbPath string
	runner  Runner
	timeout time.Duration
	// idPrefix ties together the invocations of one controller in the logs.
	idPrefix string
}

type Option func(*ADBController)

// WithADBPath overrides the bridge tool executable.
func WithADBPath(path string) Option {
	return func(r *ADBController) {
		if path != "" {
			r.adbPath = path
		}
	}
}

// WithRunner replaces the subprocess runner.
func WithRunner(runner Runner) Option {
	return func(r *ADBController) {
		if runner != nil {
			r.runner = runner
		}
	}
}

// WithTimeout bounds every bridge tool invocation. Zero means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(r *ADBController) {
		r.timeout = timeout
	}
}

func NewADBController(opts ...Option) *ADBController {
	r := &ADBController{
		adbPath:  constants.DefaultADBPath,
		runner:   ExecRunner{},
		idPrefix: uuid.New().String()[:8],
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ADBController) ADBPath() string {
	return r.adbPath
}

func (r *ADBController) nextRunID() string {
	return r.idPrefix + "-" + uuid.New().String()[:8]
}

// sessionArgs prefixes args with the session selector.
func sessionArgs(sessionID string, args ...string) []string {
	return append([]string{"-s", sessionID}, args...)
}
