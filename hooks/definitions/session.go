package definitions

// Session is one device attached to the bridge tool.
type Session struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// SessionInfo describes the rendering capabilities of a session.
type SessionInfo struct {
	Backend string `json:"backend"`
	System  string `json:"system"`
}

// TransferResult is the absolute device path a file was pushed to.
type TransferResult = string
