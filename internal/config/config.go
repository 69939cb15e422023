// Package config loads settings for the division tool from an optional YAML file
// and environment variables. Environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sukalov/lyricsdivision/internal/utils"
)

const (
	DefaultLyricsDir = "lyrics"
	DefaultRoleFile  = "PlayerRole.txt"
	DefaultOutputDir = "out"
)

type Config struct {
	LyricsDir string `yaml:"lyrics_dir"`
	RoleFile  string `yaml:"role_file"`
	OutputDir string `yaml:"output_dir"`
	// Seed fixes rotations; 0 seeds from the clock
	Seed int64 `yaml:"seed"`

	DatabaseURL       string `yaml:"database_url"`
	DatabaseAuthToken string `yaml:"database_auth_token"`
	RedisURL          string `yaml:"redis_url"`
	RedisPassword     string `yaml:"redis_password"`
	BotToken          string `yaml:"bot_token"`
}

var envKeys = []string{
	"LYRICS_DIR", "ROLE_FILE", "OUTPUT_DIR", "SEED",
	"DATABASE_URL", "DATABASE_AUTH_TOKEN", "REDIS_URL", "REDIS_PASSWORD", "BOT_TOKEN",
}

func Default() *Config {
	return &Config{
		LyricsDir: DefaultLyricsDir,
		RoleFile:  DefaultRoleFile,
		OutputDir: DefaultOutputDir,
	}
}

// Load reads path (skipped when empty) and applies environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(utils.LoadOptionalEnv(envKeys)); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	set := func(key string, dst *string) {
		if v, ok := env[key]; ok {
			*dst = v
		}
	}
	set("LYRICS_DIR", &c.LyricsDir)
	set("ROLE_FILE", &c.RoleFile)
	set("OUTPUT_DIR", &c.OutputDir)
	set("DATABASE_URL", &c.DatabaseURL)
	set("DATABASE_AUTH_TOKEN", &c.DatabaseAuthToken)
	set("REDIS_URL", &c.RedisURL)
	set("REDIS_PASSWORD", &c.RedisPassword)
	set("BOT_TOKEN", &c.BotToken)

	if v, ok := env["SEED"]; ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse SEED: %w", err)
		}
		c.Seed = seed
	}

	return nil
}
