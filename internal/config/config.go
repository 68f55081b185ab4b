package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Name    string `yaml:"name"`
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type SessionConfig struct {
	CookieName   string `yaml:"cookie_name"`
	CookieTTL    string `yaml:"cookie_ttl"`
	CookieSecure bool   `yaml:"cookie_secure"`
	CachePrefix  string `yaml:"cache_prefix"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ConfigFile struct {
	App     AppConfig     `yaml:"app"`
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Redis   RedisConfig   `yaml:"redis"`
}

type Config struct {
	AppName       string
	Port          string
	GinMode       string
	APIBaseURL    string
	APITimeout    time.Duration
	CookieName    string
	CookieTTL     time.Duration
	CookieSecure  bool
	CachePrefix   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml when present and falls back to environment
// variables with defaults otherwise, so the portal boots with nothing but an
// API base address.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_FILE", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		configFile = fromEnv()
	}

	applyDefaults(configFile)

	apiTimeout, err := time.ParseDuration(configFile.API.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid API timeout: %w", err)
	}

	cookieTTL, err := time.ParseDuration(configFile.Session.CookieTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cookie TTL: %w", err)
	}

	return &Config{
		AppName:       configFile.App.Name,
		Port:          fmt.Sprintf("%d", configFile.App.Port),
		GinMode:       configFile.App.GinMode,
		APIBaseURL:    configFile.API.BaseURL,
		APITimeout:    apiTimeout,
		CookieName:    configFile.Session.CookieName,
		CookieTTL:     cookieTTL,
		CookieSecure:  configFile.Session.CookieSecure,
		CachePrefix:   configFile.Session.CachePrefix,
		RedisAddr:     configFile.Redis.Addr,
		RedisPassword: configFile.Redis.Password,
		RedisDB:       configFile.Redis.DB,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func fromEnv() *ConfigFile {
	return &ConfigFile{
		App: AppConfig{
			Name:    env("APP_NAME", ""),
			Port:    atoi(env("PORT", "0")),
			GinMode: env("GIN_MODE", ""),
		},
		API: APIConfig{
			BaseURL: env("API_BASE_URL", ""),
			Timeout: env("API_TIMEOUT", ""),
		},
		Session: SessionConfig{
			CookieName:   env("SESSION_COOKIE_NAME", ""),
			CookieTTL:    env("SESSION_COOKIE_TTL", ""),
			CookieSecure: env("SESSION_COOKIE_SECURE", "") == "true",
		},
		Redis: RedisConfig{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       atoi(env("REDIS_DB", "0")),
		},
	}
}

func applyDefaults(cf *ConfigFile) {
	if cf.App.Name == "" {
		cf.App.Name = "Portal Akademik"
	}
	if cf.App.Port == 0 {
		cf.App.Port = 3000
	}
	if cf.App.GinMode == "" {
		cf.App.GinMode = "debug"
	}
	if cf.API.BaseURL == "" {
		cf.API.BaseURL = "http://localhost:8000/api"
	}
	if cf.API.Timeout == "" {
		cf.API.Timeout = "15s"
	}
	if cf.Session.CookieName == "" {
		cf.Session.CookieName = "auth_token"
	}
	if cf.Session.CookieTTL == "" {
		cf.Session.CookieTTL = "720h" // 30 days
	}
	if cf.Session.CachePrefix == "" {
		cf.Session.CachePrefix = "usercache:"
	}
	if cf.Redis.Addr == "" {
		cf.Redis.Addr = "localhost:6379"
	}
	// The secure flag follows gin's mode unless set explicitly: release mode
	// serves behind TLS, debug mode is local development.
	if !cf.Session.CookieSecure && cf.App.GinMode == "release" {
		cf.Session.CookieSecure = true
	}
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
