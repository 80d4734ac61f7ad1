package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	API      APIConfig      `yaml:"api"`
	Comments CommentsConfig `yaml:"comments"`
	Media    MediaConfig    `yaml:"media"`
	Session  SessionConfig  `yaml:"session"`
	Cache    CacheConfig    `yaml:"cache"`
}

type APIConfig struct {
	BaseURL   string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:4000"`
	Timeout   time.Duration `yaml:"timeout" env-default:"30s"`
	UserAgent string        `yaml:"user_agent" env-default:"eterno-memorial-cli"`
}

type CommentsConfig struct {
	PerPage int `yaml:"per_page" env-default:"5"`
}

type MediaConfig struct {
	MaxVideoSize      int64    `yaml:"max_video_size" env-default:"52428800"`
	AllowedVideoTypes []string `yaml:"allowed_video_types" env-default:"video/mp4,video/webm,video/quicktime"`
}

type SessionConfig struct {
	// Backend selects where the operator token lives between runs:
	// "memory" or "redis".
	Backend string        `yaml:"backend" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env-default:"24h"`
	Redis   RedisConf     `yaml:"redis"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

type CacheConfig struct {
	TTL             time.Duration `yaml:"ttl" env-default:"30s"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env-default:"5m"`
}

// MustLoad reads the config file named by path, or by CONFIG_PATH when path
// is empty. Without either, environment variables and defaults carry it.
func MustLoad(path string) *Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path == "" {
		var cfg Config
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			panic("cannot read config from env: " + err.Error())
		}
		return &cfg
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}
