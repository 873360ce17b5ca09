// Package config loads touchport settings from TOML
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/parameter"
)

// Config is the full runtime configuration
type Config struct {
	Modes    ModesConfig       `toml:"modes"`
	Notify   NotifyConfig      `toml:"notify"`
	Log      LogConfig         `toml:"log"`
	Bridge   BridgeConfig      `toml:"bridge"`
	Compat   CompatConfig      `toml:"compat"`
	Session  SessionConfig     `toml:"session"`
	Host     HostConfig        `toml:"host"`
	Messages map[string]string `toml:"messages"`
}

// ModesConfig seeds the translator mode flags
type ModesConfig struct {
	Touchpad     bool `toml:"touchpad"`
	ClickAndDrag bool `toml:"click_and_drag"`
}

// NotifyConfig controls mode-toggle notifications
type NotifyConfig struct {
	DurationMs int  `toml:"duration_ms"`
	Chime      bool `toml:"chime"`
}

// Duration returns the notification duration
func (n NotifyConfig) Duration() time.Duration {
	return time.Duration(n.DurationMs) * time.Millisecond
}

type LogConfig struct {
	Level string `toml:"level"`
}

// BridgeConfig controls the websocket raw-event bridge
type BridgeConfig struct {
	Enabled bool   `toml:"enabled"`
	Listen  string `toml:"listen"`
	Path    string `toml:"path"`
}

// CompatConfig holds switches that reproduce older platform bridge quirks
type CompatConfig struct {
	JoystickUpFallthrough bool `toml:"joystick_up_fallthrough"`
}

type SessionConfig struct {
	Path string `toml:"path"`
}

// HostConfig tunes the terminal host
type HostConfig struct {
	// HideEvents lists event type names (as printed in the event log) kept out of the log
	HideEvents []string `toml:"hide_events"`
}

// HiddenTypes resolves HideEvents; unknown names are skipped, Validate reports them
func (h HostConfig) HiddenTypes() []event.Type {
	types := make([]event.Type, 0, len(h.HideEvents))
	for _, name := range h.HideEvents {
		if ty, ok := event.ParseType(name); ok {
			types = append(types, ty)
		}
	}
	return types
}

var validLevels = []string{"disable", "fatal", "error", "warn", "info", "debug"}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Notify: NotifyConfig{
			DurationMs: int(parameter.NotificationDuration / time.Millisecond),
			Chime:      true,
		},
		Log: LogConfig{Level: "info"},
		Bridge: BridgeConfig{
			Listen: "127.0.0.1:8765",
			Path:   "/input",
		},
		Session:  SessionConfig{Path: "touchport-session.toml"},
		Messages: map[string]string{},
	}
}

// Load overlays the TOML file at path on the defaults
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data onto cfg and validates the result
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config parse: unknown keys %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate rejects settings the runtime cannot honor
func (c *Config) Validate() error {
	var errs []error
	if c.Notify.DurationMs <= 0 {
		errs = append(errs, fmt.Errorf("notify.duration_ms must be positive, got %d", c.Notify.DurationMs))
	}
	if c.Bridge.Enabled {
		if c.Bridge.Listen == "" {
			errs = append(errs, errors.New("bridge.listen is empty"))
		}
		if !strings.HasPrefix(c.Bridge.Path, "/") {
			errs = append(errs, fmt.Errorf("bridge.path must start with '/', got %q", c.Bridge.Path))
		}
	}
	if !validLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q not one of %s", c.Log.Level, strings.Join(validLevels, ", ")))
	}
	for _, name := range c.Host.HideEvents {
		if _, ok := event.ParseType(name); !ok {
			errs = append(errs, fmt.Errorf("host.hide_events: unknown event type %q", name))
		}
	}
	return errors.Join(errs...)
}

func validLevel(level string) bool {
	for _, l := range validLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}
