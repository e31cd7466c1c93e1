package android

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	"github.com/nopeforge/nopegl-hooks/constants"
	"github.com/nopeforge/nopegl-hooks/hooks/definitions"

	"github.com/rs/zerolog/log"
)

func (r *ADBController) ListSessions(ctx context.Context) ([]definitions.Session, error) {
	output, err := r.run(ctx, "ListSessions", "devices", "-l")
	if err != nil {
		return nil, err
	}
	return ParseSessions(output), nil
}

// ParseSessions parses the output of "adb devices -l". The first line is a
// header; every other non-empty line is split at its first whitespace run
// into the session id and a free-form description.
func ParseSessions(output string) []definitions.Session {
	sessions := []definitions.Session{}
	scanner := bufio.NewScanner(strings.NewReader(output))

	// Skip the first line (header)
	scanner.Scan()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		id, description := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			id = line[:i]
			description = strings.TrimLeftFunc(line[i:], unicode.IsSpace)
		}

		sessions = append(sessions, definitions.Session{
			ID:          id,
			Description: description,
		})
	}

	return sessions
}

func (r *ADBController) GetSessionInfo(sessionID string) definitions.SessionInfo {
	return constants.AndroidSessionInfo
}

// CheckTool verifies the bridge tool can be launched and returns the first
// line it prints for "version".
func (r *ADBController) CheckTool(ctx context.Context) (string, error) {
	if _, err := exec.LookPath(r.adbPath); err != nil {
		log.Error().Err(err).Msg("[CheckTool] bridge tool not found")
		return "", &definitions.ExternalToolError{
			Tool:     r.adbPath,
			Args:     []string{"version"},
			ExitCode: -1,
			Err:      err,
		}
	}

	output, err := r.run(ctx, "CheckTool", "version")
	if err != nil {
		return "", err
	}

	versionLine, _, _ := strings.Cut(output, "\n")
	versionLine = strings.TrimSpace(versionLine)
	if versionLine == "" {
		return "", fmt.Errorf("%s version printed nothing", r.adbPath)
	}
	return versionLine, nil
}
