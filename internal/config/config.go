package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidGlyphs = errors.New("invalid glyphs")

// markGlyphs are drawn for occupied squares and cannot be reused for empty ones.
var markGlyphs = []string{"X", "O"}

type Config struct {
	LogLevel string `yaml:"log-level" env:"CHECKERS_LOG_LEVEL" env-default:"warn"`
	NoClear  bool   `yaml:"no-clear" env:"CHECKERS_NO_CLEAR"`
	Glyphs   Glyphs `yaml:"glyphs"`
}

type Glyphs struct {
	Neutral string `yaml:"neutral" env:"CHECKERS_GLYPH_NEUTRAL" env-default:"░"`
	Empty   string `yaml:"empty" env:"CHECKERS_GLYPH_EMPTY" env-default:"□"`
}

// MustLoad - load all configurations from the yaml file at path. A missing file is not an error:
// the values then come from the environment and the defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Glyphs.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - every square kind must render with its own symbol.
func (that *Glyphs) Validate() error {
	if that.Neutral == "" || that.Empty == "" {
		return fmt.Errorf("%w: neutral and empty glyphs must be set", ErrInvalidGlyphs)
	}

	if that.Neutral == that.Empty {
		return fmt.Errorf("%w: neutral and empty glyphs are both %q", ErrInvalidGlyphs, that.Neutral)
	}

	for _, mark := range markGlyphs {
		if that.Neutral == mark || that.Empty == mark {
			return fmt.Errorf("%w: %q is a player mark", ErrInvalidGlyphs, mark)
		}
	}

	return nil
}
