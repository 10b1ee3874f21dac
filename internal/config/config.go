package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Pg                 Pg       `yaml:"pg"`
	ThreadsPerPage     int      `yaml:"threads_per_page"`      // default page size for thread listings
	MaxThreadsPerPage  int      `yaml:"max_threads_per_page"`  // hard cap on the limit query param
	PreviewReplies     int      `yaml:"preview_replies"`       // number of last replies shown in board preview
	AdminTokenTTLHours int      `yaml:"admin_token_ttl_hours"` // lifetime of minted admin tokens
	LogLevel           string   `yaml:"log_level"`
	LogJSON            bool     `yaml:"log_json"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey            string `yaml:"jwt_key"`
	AdminPasswordHash string `yaml:"admin_password_hash"` // bcrypt hash
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) AdminTokenTTL() time.Duration {
	return time.Duration(c.Public.AdminTokenTTLHours) * time.Hour
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.ThreadsPerPage <= 0 {
		c.Public.ThreadsPerPage = 20
	}
	if c.Public.MaxThreadsPerPage <= 0 {
		c.Public.MaxThreadsPerPage = 100
	}
	if c.Public.PreviewReplies <= 0 {
		c.Public.PreviewReplies = 10
	}
	if c.Public.AdminTokenTTLHours <= 0 {
		c.Public.AdminTokenTTLHours = 24
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
}
