package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game     `yaml:"game"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

// Game holds the defaults for new games. WinThreshold overrides the
// profile's columns-to-win when positive.
type Game struct {
	Profile      string `yaml:"profile" env:"GAME_PROFILE" env-default:"standard"`
	WinThreshold int    `yaml:"win-threshold" env:"GAME_WIN_THRESHOLD" env-default:"0"`
}

// SelfPlay configures the bot match run by the command.
type SelfPlay struct {
	Players  []string `yaml:"players" env:"SELF_PLAY_PLAYERS" env-default:"red,blue"`
	MaxTurns int      `yaml:"max-turns" env:"SELF_PLAY_MAX_TURNS" env-default:"5000"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path; environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadEnv - builds the configuration from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from environment: %w", err)
	}

	return config, nil
}
