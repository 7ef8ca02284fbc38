package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	Game     Game   `yaml:"game"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	Markers              []string      `yaml:"markers" env:"TICTACTOE_MARKERS" env-default:"X,O"`
	TurnTimeout          time.Duration `yaml:"turn-timeout" env:"TICTACTOE_TURN_TIMEOUT" env-default:"0s"`
	AlternateFirstPlayer bool          `yaml:"alternate-first-player" env:"TICTACTOE_ALTERNATE_FIRST_PLAYER" env-default:"false"`
	Seed                 int64         `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
}

type Redis struct {
	Enabled     bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env:"TICTACTOE_REDIS_SNAPSHOT_TTL" env-default:"1h"`
}

// MustLoad - loads config.yml when it exists, otherwise the environment alone.
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
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
