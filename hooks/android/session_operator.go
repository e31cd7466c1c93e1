package android

import (
	"context"
	"strings"

	"github.com/nopeforge/nopegl-hooks/constants"
	"github.com/nopeforge/nopegl-hooks/hooks/definitions"
)

// SyncFile pushes localPath into the viewer data directory of the session
// as remoteName and returns the device path it was written to. The push
// uses adb's --sync mode, so an up to date remote copy is left alone.
func (r *ADBController) SyncFile(ctx context.Context, sessionID, localPath, remoteName string) (definitions.TransferResult, error) {
	// $EXTERNAL_STORAGE is expanded by the device shell
	output, err := r.run(ctx, "SyncFile", sessionArgs(sessionID,
		"shell", "echo", "-n", "$EXTERNAL_STORAGE/"+constants.DataDirName)...)
	if err != nil {
		return "", err
	}

	destDir := strings.TrimRight(output, " \t\r\n")
	destFile := destDir + "/" + remoteName

	if _, err := r.run(ctx, "SyncFile", sessionArgs(sessionID, "shell", "mkdir", "-p", destDir)...); err != nil {
		return "", err
	}

	if _, err := r.run(ctx, "SyncFile", sessionArgs(sessionID, "push", "--sync", localPath, destFile)...); err != nil {
		return "", err
	}

	return destFile, nil
}

// NotifySceneChange broadcasts scene to the viewer running on the session.
// The scene is sent as is; the device shell re-parses it, so callers quote
// it beforehand when it holds shell metacharacters.
func (r *ADBController) NotifySceneChange(ctx context.Context, sessionID, scene string) error {
	_, err := r.run(ctx, "NotifySceneChange", sessionArgs(sessionID,
		"shell", "am", "broadcast",
		"-a", constants.SceneUpdateAction,
		"--es", constants.SceneExtraKey, scene,
	)...)
	return err
}
