// Package config holds the relay policy switches and loads them from TOML
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/inputrelay/parameter"
)

// Config selects relay policies
// Fields mirror the build-time switches of a native backend; here they are set once before Init
type Config struct {
	// Gamepad enables controller polling
	Gamepad bool `toml:"gamepad"`

	// ResetOnFocusLoss clears buttons, wheel, pointer, keys and capture when focus changes
	ResetOnFocusLoss bool `toml:"reset_on_focus_loss"`

	// InputWhileUnfocused keeps applying pointer/keyboard input while the window is in the background
	// The focus flag is never lowered and activation is not reported as handled
	InputWhileUnfocused bool `toml:"input_while_unfocused"`

	// DirectiveBase is the first private message code; five consecutive codes are reserved
	DirectiveBase uint32 `toml:"directive_base"`

	// LogLevel is a zerolog level name
	LogLevel string `toml:"log_level"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Gamepad:             true,
		ResetOnFocusLoss:    true,
		InputWhileUnfocused: false,
		DirectiveBase:       parameter.DirectiveBase,
		LogLevel:            "info",
	}
}

// Load reads path over the defaults
// A missing file yields the defaults; unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return cfg, errors.Wrapf(err, "config: decode %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field ranges
func (c Config) Validate() error {
	if c.DirectiveBase < parameter.DirectiveBase {
		return errors.Errorf("config: directive_base 0x%X below private range 0x%X", c.DirectiveBase, parameter.DirectiveBase)
	}
	if c.DirectiveBase > 0xFFFF-parameter.DirectiveCount {
		return errors.Errorf("config: directive_base 0x%X leaves no room for %d codes", c.DirectiveBase, parameter.DirectiveCount)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config: log_level")
	}
	return nil
}

// Level returns the parsed log level, info on error
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Write encodes c as TOML
func (c Config) Write(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "config: encode")
}
