package android

import (
	"context"
	"strings"
	"sync"
)

type call struct {
	name string
	args []string
}

type reply struct {
	output string
	err    error
}

// recordingRunner answers invocations in order and remembers their argv.
type recordingRunner struct {
	mu      sync.Mutex
	calls   []call
	replies []reply
}

func (f *recordingRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{name: name, args: append([]string(nil), args...)})
	if len(f.replies) == 0 {
		return "", nil
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r.output, r.err
}

func (f *recordingRunner) commandLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	lines := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		lines = append(lines, c.name+" "+strings.Join(c.args, " "))
	}
	return lines
}
