package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// AppConfig holds process-level settings: logging, score storage and the SSH host.
// Values come from an optional YAML file and ARCADE_* environment variables.
type AppConfig struct {
	LogLevel string    `yaml:"log-level" env:"ARCADE_LOG_LEVEL" env-default:"info"`
	Store    string    `yaml:"store" env:"ARCADE_STORE" env-default:"sqlite"` // sqlite, redis or memory
	DBPath   string    `yaml:"db-path" env:"ARCADE_DB" env-default:"~/.arcade/scores.db"`
	Redis    Redis     `yaml:"redis"`
	SSH      SSHServer `yaml:"ssh"`
}

// Redis locates the redis score store.
type Redis struct {
	Host     string `yaml:"host" env:"ARCADE_REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"ARCADE_REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"ARCADE_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"ARCADE_REDIS_DB" env-default:"0"`
}

// SSHServer configures `arcade serve`.
type SSHServer struct {
	Address     string        `yaml:"address" env:"ARCADE_SSH_ADDR" env-default:":23234"`
	HostKeyPath string        `yaml:"host-key" env:"ARCADE_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle-timeout" env:"ARCADE_SSH_IDLE_TIMEOUT" env-default:"30m"`
}

// Addr returns the redis host:port pair.
func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// LoadApp reads the app config. With an empty path it reads ~/.arcade/arcade.yml
// when present and the environment otherwise; an explicit path must exist.
func LoadApp(path string) (AppConfig, error) {
	var cfg AppConfig

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".arcade", "arcade.yml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("config: read env: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
