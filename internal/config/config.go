package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	NoColor  bool   `yaml:"no-color" env:"TTT_NO_COLOR"`
	Mode     string `yaml:"mode" env:"TTT_MODE" env-default:""`
}

// MustLoad - load all configurations in config.yml file, or from the environment
// when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	if _, err = entity.ParseMode(config.Mode); err != nil {
		return nil, fmt.Errorf("invalid mode: %w", err)
	}

	return config, nil
}

// FirstMode - the mode of the first round, ModeNone when the menu should ask.
func (that *Config) FirstMode() entity.Mode {
	mode, _ := entity.ParseMode(that.Mode)
	return mode
}
