package hooks

import (
	"context"
	"fmt"

	"github.com/nopeforge/nopegl-hooks/constants"
	"github.com/nopeforge/nopegl-hooks/hooks/android"
	"github.com/nopeforge/nopegl-hooks/hooks/definitions"
)

// SessionManager discovers sessions and reports what they can do
type SessionManager interface {
	ListSessions(ctx context.Context) ([]definitions.Session, error)
	GetSessionInfo(sessionID string) definitions.SessionInfo
	CheckTool(ctx context.Context) (string, error)
}

// SessionOperator changes what a session shows
type SessionOperator interface {
	SyncFile(ctx context.Context, sessionID, localPath, remoteName string) (definitions.TransferResult, error)
	NotifySceneChange(ctx context.Context, sessionID, scene string) error
}

type SessionController interface {
	SessionManager
	SessionOperator
}

func CreateController(backend string, opts ...android.Option) (SessionController, error) {
	switch backend {
	case constants.ADB:
		return android.NewADBController(opts...), nil
	default:
		return nil, fmt.Errorf("unknown backend: %v", backend)
	}
}
