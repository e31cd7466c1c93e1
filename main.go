package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/nopeforge/nopegl-hooks/constants"
	"github.com/nopeforge/nopegl-hooks/hooks"
	"github.com/nopeforge/nopegl-hooks/hooks/android"
	"github.com/nopeforge/nopegl-hooks/hooks/definitions"
	"github.com/nopeforge/nopegl-hooks/utils"
)

// Config holds all the configuration values from command line arguments
type Config struct {
	ADBPath   string        `json:"adb_path"`
	SessionID string        `json:"session_id"`
	Timeout   time.Duration `json:"timeout"`

	ListSessions bool   `json:"list_sessions"`
	Format       string `json:"format"`
	SessionInfo  bool   `json:"session_info"`
	Check        bool   `json:"check"`

	SyncFile   string `json:"sync_file"`
	RemoteName string `json:"remote_name"`

	Scene     string `json:"scene"`
	SceneFile string `json:"scene_file"`
	Quote     bool   `json:"quote"`
	Demo      bool   `json:"demo"`

	JSON  bool `json:"json"`
	Debug bool `json:"debug"`
}

var rootCmd = &cobra.Command{
	Use:   "nopegl-hooks",
	Short: "Drive nope.gl viewer sessions on Android devices",
	Long: `nopegl-hooks talks to Android devices running the nope.gl viewer through adb.
It lists sessions, pushes data files to the viewer data directory and
broadcasts scene updates to the running viewer.`,
	Example: `  # List attached sessions
  nopegl-hooks --list-sessions

  # Custom listing format
  nopegl-hooks --list-sessions --format '{{index}}: {{id}} ({{description}})'

  # Push a texture to a given session
  nopegl-hooks -s emulator-5554 --sync ./assets/cat.jpg

  # Broadcast a serialized scene, quoting it for the device shell
  nopegl-hooks --scene-file scene.ngl --quote

  # Send the built-in demo scene to the first session
  nopegl-hooks --demo

  # Check adb and attached devices
  nopegl-hooks --check`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := hooks.CreateController(constants.ADB,
			android.WithADBPath(config.ADBPath),
			android.WithTimeout(config.Timeout),
		)
		if err != nil {
			return err
		}

		a := &app{cfg: config, controller: controller, out: cmd.OutOrStdout()}
		handled, err := a.run(cmd.Context())
		if err != nil {
			return err
		}
		if !handled {
			return cmd.Help()
		}
		return nil
	},
}

var config = &Config{}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as bool with default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Helper function to get environment variable as duration with default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func init() {
	// Bridge options
	rootCmd.PersistentFlags().StringVar(&config.ADBPath, "adb",
		getEnv("NOPEGL_ADB", constants.DefaultADBPath),
		"Path to the adb executable")

	rootCmd.PersistentFlags().StringVarP(&config.SessionID, "session", "s",
		getEnv("NOPEGL_SESSION", ""),
		"Session (adb serial) to target, defaults to the first attached one")

	rootCmd.PersistentFlags().DurationVar(&config.Timeout, "timeout",
		getEnvDuration("NOPEGL_TIMEOUT", 0),
		"Timeout for each adb invocation (0 waits forever)")

	// Session options
	rootCmd.PersistentFlags().BoolVar(&config.ListSessions, "list-sessions", false,
		"List attached sessions and exit")

	rootCmd.PersistentFlags().StringVar(&config.Format, "format",
		getEnv("NOPEGL_FORMAT", "{{id}}\t{{description}}"),
		"Line template for --list-sessions ({{index}}, {{id}}, {{description}})")

	rootCmd.PersistentFlags().BoolVar(&config.SessionInfo, "session-info", false,
		"Show the capabilities of the session and exit")

	rootCmd.PersistentFlags().BoolVar(&config.Check, "check", false,
		"Check adb installation and attached sessions")

	// Transfer options
	rootCmd.PersistentFlags().StringVar(&config.SyncFile, "sync", "",
		"Local file to push to the viewer data directory")

	rootCmd.PersistentFlags().StringVar(&config.RemoteName, "remote-name", "",
		"File name on the device (default: base name of --sync)")

	// Scene options
	rootCmd.PersistentFlags().StringVar(&config.Scene, "scene", "",
		"Serialized scene to broadcast")

	rootCmd.PersistentFlags().StringVar(&config.SceneFile, "scene-file", "",
		"Read the serialized scene to broadcast from a file")

	rootCmd.PersistentFlags().BoolVar(&config.Quote, "quote", false,
		"Quote the scene for the device shell before broadcasting")

	rootCmd.PersistentFlags().BoolVar(&config.Demo, "demo", false,
		"Broadcast the built-in demo scene")

	// Other options
	rootCmd.PersistentFlags().BoolVar(&config.JSON, "json", false,
		"Print results as JSON")

	rootCmd.PersistentFlags().BoolVar(&config.Debug, "debug",
		getEnvBool("NOPEGL_DEBUG", false),
		"Enable debug mode (default: false)")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	rootCmd.PersistentPreRunE = validateArgs

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// Configure zerolog
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", utils.JsonString(config)).Msg("configuration")

	return config.validate()
}

func (c *Config) validate() error {
	if len(c.ADBPath) == 0 {
		return errors.New("adb path cannot be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}

	actions := map[string]bool{
		"--check":         c.Check,
		"--list-sessions": c.ListSessions,
		"--session-info":  c.SessionInfo,
		"--sync":          c.SyncFile != "",
		"--scene":         c.Scene != "",
		"--scene-file":    c.SceneFile != "",
		"--demo":          c.Demo,
	}
	selected := lo.Keys(lo.PickBy(actions, func(_ string, on bool) bool { return on }))
	if len(selected) > 1 {
		sort.Strings(selected)
		return fmt.Errorf("only one action may be given, got %s", strings.Join(selected, ", "))
	}

	if c.RemoteName != "" && c.SyncFile == "" {
		return errors.New("--remote-name requires --sync")
	}
	if c.Quote && c.Scene == "" && c.SceneFile == "" {
		return errors.New("--quote requires --scene or --scene-file")
	}
	return nil
}

type app struct {
	cfg        *Config
	controller hooks.SessionController
	out        io.Writer
}

// run performs the action selected by the flags. It reports false when no
// action was requested.
func (a *app) run(ctx context.Context) (bool, error) {
	switch {
	case a.cfg.Check:
		return true, a.checkSystemRequirements(ctx)
	case a.cfg.ListSessions:
		return true, a.listSessions(ctx)
	case a.cfg.SessionInfo:
		return true, a.sessionInfo(ctx)
	case a.cfg.SyncFile != "":
		return true, a.syncFile(ctx)
	case a.cfg.Scene != "" || a.cfg.SceneFile != "":
		scene, err := a.sceneFromFlags()
		if err != nil {
			return true, err
		}
		return true, a.notifyScene(ctx, scene)
	case a.cfg.Demo:
		return true, a.notifyScene(ctx, utils.ShellQuote(strings.TrimSpace(constants.DemoScene)))
	}
	return false, nil
}

// resolveSession returns the session given on the command line, or the
// first attached one.
func (a *app) resolveSession(ctx context.Context) (string, error) {
	if a.cfg.SessionID != "" {
		return a.cfg.SessionID, nil
	}

	sessions, err := a.controller.ListSessions(ctx)
	if err != nil {
		return "", err
	}
	first, ok := lo.First(sessions)
	if !ok {
		return "", errors.New("no session attached")
	}
	log.Info().Str("session", first.ID).Msg("using first attached session")
	return first.ID, nil
}

func (a *app) listSessions(ctx context.Context) error {
	sessions, err := a.controller.ListSessions(ctx)
	if err != nil {
		return err
	}

	if a.cfg.JSON {
		_, err = fmt.Fprintln(a.out, utils.JsonIndent(sessions))
		return err
	}

	if len(sessions) == 0 {
		log.Info().Msg("No sessions attached.")
		return nil
	}

	for i, s := range sessions {
		line := utils.RenderTemplate(a.cfg.Format, map[string]string{
			"index":       strconv.Itoa(i),
			"id":          s.ID,
			"description": s.Description,
		})
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) sessionInfo(ctx context.Context) error {
	sessionID, err := a.resolveSession(ctx)
	if err != nil {
		return err
	}

	info := a.controller.GetSessionInfo(sessionID)
	if a.cfg.JSON {
		_, err = fmt.Fprintln(a.out, utils.JsonIndent(info))
		return err
	}
	_, err = fmt.Fprintf(a.out, "backend: %s\nsystem: %s\n", info.Backend, info.System)
	return err
}

func (a *app) syncFile(ctx context.Context) error {
	sessionID, err := a.resolveSession(ctx)
	if err != nil {
		return err
	}

	remoteName := a.cfg.RemoteName
	if remoteName == "" {
		remoteName = filepath.Base(a.cfg.SyncFile)
	}

	destFile, err := a.controller.SyncFile(ctx, sessionID, a.cfg.SyncFile, remoteName)
	if err != nil {
		return fmt.Errorf("sync %s: %w", a.cfg.SyncFile, err)
	}
	log.Info().Str("session", sessionID).Str("local", a.cfg.SyncFile).Msg("file synced")

	if a.cfg.JSON {
		_, err = fmt.Fprintln(a.out, utils.JsonIndent(map[string]string{
			"session": sessionID,
			"path":    destFile,
		}))
		return err
	}
	_, err = fmt.Fprintln(a.out, destFile)
	return err
}

func (a *app) sceneFromFlags() (string, error) {
	scene := a.cfg.Scene
	if a.cfg.SceneFile != "" {
		data, err := os.ReadFile(a.cfg.SceneFile)
		if err != nil {
			return "", fmt.Errorf("read scene: %w", err)
		}
		scene = strings.TrimSpace(string(data))
	}

	if a.cfg.Quote {
		scene = utils.ShellQuote(scene)
	}
	return scene, nil
}

func (a *app) notifyScene(ctx context.Context, scene string) error {
	sessionID, err := a.resolveSession(ctx)
	if err != nil {
		return err
	}

	if err := a.controller.NotifySceneChange(ctx, sessionID, scene); err != nil {
		return fmt.Errorf("scene update: %w", err)
	}
	log.Info().Str("session", sessionID).Int("bytes", len(scene)).Msg("scene update sent")
	return nil
}

func (a *app) checkSystemRequirements(ctx context.Context) error {
	log.Info().Msg("Checking system requirements...")
	log.Info().Msg(strings.Repeat("-", 50))

	// Check 1: Tool installed
	log.Info().Msg("1. Checking adb installation...")
	version, err := a.controller.CheckTool(ctx)
	if err != nil {
		log.Error().Err(err).Msg("FAILED")
		log.Info().Msg("   Solution: Install the Android platform tools:")
		log.Info().Msg("     - macOS: brew install android-platform-tools")
		log.Info().Msg("     - Linux: sudo apt install android-tools-adb")
		log.Info().Msg("     - Windows: Download from https://developer.android.com/studio/releases/platform-tools")
		return err
	}
	log.Info().Msgf("OK (%s)", version)

	// Check 2: Session attached
	log.Info().Msg("2. Checking attached sessions...")
	sessions, err := a.controller.ListSessions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("FAILED")
		return err
	}
	if len(sessions) == 0 {
		log.Error().Msg("FAILED")
		log.Info().Msg("   Error: No sessions attached.")
		log.Info().Msg("   Solution:")
		log.Info().Msg("     1. Enable USB debugging on your Android device")
		log.Info().Msg("     2. Connect via USB and authorize the connection")
		return errors.New("no session attached")
	}

	ids := lo.Map(sessions, func(s definitions.Session, _ int) string { return s.ID })
	if len(ids) > 2 {
		ids = append(ids[:2], "...")
	}
	log.Info().Msgf("OK (%d session(s): %s)", len(sessions), strings.Join(ids, ", "))

	log.Info().Msg(strings.Repeat("-", 50))
	log.Info().Msg("All system checks passed!")

	if a.cfg.JSON {
		_, err = fmt.Fprintln(a.out, utils.JsonIndent(map[string]any{
			"adb_version": version,
			"sessions":    sessions,
		}))
		return err
	}
	return nil
}
