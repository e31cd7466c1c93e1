package constants

import (
	_ "embed"

	"github.com/nopeforge/nopegl-hooks/hooks/definitions"
)

// Controller backends.
const (
	ADB = "adb"
)

const (
	// DefaultADBPath is looked up on PATH unless overridden.
	DefaultADBPath = "adb"

	// DataDirName is created under $EXTERNAL_STORAGE on the device.
	DataDirName = "nopegl_data"

	SceneUpdateAction = "scene_update"
	SceneExtraKey     = "scene"
)

// AndroidSessionInfo is reported for every adb session, whatever the device.
var AndroidSessionInfo = definitions.SessionInfo{
	Backend: "opengles",
	System:  "Android",
}

// DemoScene is a rotating triangle used to check the viewer end to end.
//
//go:embed demo_scene.ngl
var DemoScene string
