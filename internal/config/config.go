// Package config loads environment configuration for the input receiver.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultDataDir       = "./data"
	defaultWindowTitle   = "Input Message Receiver"
	defaultFontFace      = FontConsolas
	defaultFontSize      = 11
	defaultShowMouseMove = true
	defaultViewerEnabled = false
	defaultListenAddr    = "127.0.0.1:8788"
	defaultViewerBacklog = 500
	defaultPasswordMode  = true
	maxViewerBacklog     = 100000
)

// Monospace faces available for the log view.
const (
	FontConsolas      = "Consolas"
	FontLucidaConsole = "Lucida Console"
	FontCourierNew    = "Courier New"
	FontCourier       = "Courier"
)

// Config holds runtime configuration values.
type Config struct {
	DataDir       string
	WindowTitle   string
	FontFace      string
	FontSize      int
	ShowMouseMove bool
	ViewerEnabled bool
	ListenAddr    string
	ViewerBacklog int
	PasswordMode  bool
	UIPassword    string
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		DataDir:       defaultDataDir,
		WindowTitle:   defaultWindowTitle,
		FontFace:      defaultFontFace,
		FontSize:      defaultFontSize,
		ShowMouseMove: defaultShowMouseMove,
		ViewerEnabled: defaultViewerEnabled,
		ListenAddr:    defaultListenAddr,
		ViewerBacklog: defaultViewerBacklog,
		PasswordMode:  defaultPasswordMode,
	}

	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.WindowTitle = envString("WINDOW_TITLE", cfg.WindowTitle)
	cfg.FontFace = normalizeFontFace(envString("FONT_FACE", cfg.FontFace))
	cfg.ShowMouseMove = envBool("SHOW_MOUSE_MOVE", cfg.ShowMouseMove)
	cfg.ViewerEnabled = envBool("VIEWER_ENABLED", cfg.ViewerEnabled)
	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.PasswordMode = envBool("PASSWORD_MODE", cfg.PasswordMode)
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))

	fontSize, err := envInt("FONT_SIZE", cfg.FontSize)
	if err != nil {
		return Config{}, err
	}
	if fontSize < 6 || fontSize > 72 {
		return Config{}, fmt.Errorf("FONT_SIZE must be 6-72")
	}
	cfg.FontSize = fontSize

	backlog, err := envInt("VIEWER_BACKLOG", cfg.ViewerBacklog)
	if err != nil {
		return Config{}, err
	}
	if backlog < 0 || backlog > maxViewerBacklog {
		return Config{}, fmt.Errorf("VIEWER_BACKLOG must be 0-%d", maxViewerBacklog)
	}
	cfg.ViewerBacklog = backlog

	if !cfg.PasswordMode {
		cfg.UIPassword = ""
	}
	if cfg.ViewerEnabled && cfg.PasswordMode && cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required when VIEWER_ENABLED is set")
	}

	return cfg, nil
}

// normalizeFontFace ensures a supported monospace face.
func normalizeFontFace(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lucida console":
		return FontLucidaConsole
	case "courier new":
		return FontCourierNew
	case "courier":
		return FontCourier
	default:
		return FontConsolas
	}
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	return key, value, true
}
