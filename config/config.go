package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	Users     []User          `yaml:"users"`
	Fixtures  FixturesConfig  `yaml:"fixtures"`
	Minio     MinioConfig     `yaml:"minio"`
	Upload    UploadConfig    `yaml:"upload"`
	Settings  SettingsConfig  `yaml:"settings"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Reports   ReportsConfig   `yaml:"reports"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"` // empty means stdout
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Fixture source kinds
const (
	SourceHTTP  = "http"
	SourceFile  = "file"
	SourceMinio = "minio"
)

type FixturesConfig struct {
	Source         string `yaml:"source"`   // http, file, minio
	BaseURL        string `yaml:"base_url"` // for http, empty means this server
	Dir            string `yaml:"dir"`      // for file, also served at /fixtures
	Prefix         string `yaml:"prefix"`   // object prefix for minio
	ListFile       string `yaml:"list_file"`
	DetailFile     string `yaml:"detail_file"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	Region     string `yaml:"region"`
	ExpireDays int    `yaml:"expire_days"`
}

// Enabled reports whether object storage is configured
func (m MinioConfig) Enabled() bool {
	return m.Endpoint != ""
}

type UploadConfig struct {
	MaxSizeMB   int     `yaml:"max_size_mb"`
	FailureRate float64 `yaml:"failure_rate"`
	MaxRecords  int     `yaml:"max_records"`
}

type SettingsConfig struct {
	DBPath string `yaml:"db_path"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

type ReportsConfig struct {
	Archive bool `yaml:"archive"` // store rendered reports in MinIO
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a configuration with every default applied, used when no file is given
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Auth.TokenExpireHours == 0 {
		c.Auth.TokenExpireHours = 24
	}
	if c.Fixtures.Source == "" {
		c.Fixtures.Source = SourceHTTP
	}
	if c.Fixtures.Dir == "" {
		c.Fixtures.Dir = "./fixtures"
	}
	if c.Fixtures.ListFile == "" {
		c.Fixtures.ListFile = "contracts.json"
	}
	if c.Fixtures.DetailFile == "" {
		c.Fixtures.DetailFile = "contract-details.json"
	}
	if c.Fixtures.TimeoutSeconds == 0 {
		c.Fixtures.TimeoutSeconds = 10
	}
	if c.Minio.Region == "" {
		c.Minio.Region = "us-east-1"
	}
	if c.Minio.ExpireDays == 0 {
		c.Minio.ExpireDays = 7
	}
	if c.Upload.MaxSizeMB == 0 {
		c.Upload.MaxSizeMB = 10
	}
	if c.Upload.MaxRecords == 0 {
		c.Upload.MaxRecords = 100
	}
	if c.Settings.DBPath == "" {
		c.Settings.DBPath = "settings.db"
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 100
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
}

// Validate rejects configurations that cannot be served
func (c *Config) Validate() error {
	switch c.Fixtures.Source {
	case SourceHTTP, SourceFile:
	case SourceMinio:
		if !c.Minio.Enabled() {
			return fmt.Errorf("fixtures.source is minio but minio.endpoint is empty")
		}
	default:
		return fmt.Errorf("unknown fixtures.source %q", c.Fixtures.Source)
	}
	if c.Upload.FailureRate < 0 || c.Upload.FailureRate > 1 {
		return fmt.Errorf("upload.failure_rate must be between 0 and 1")
	}
	if c.Reports.Archive && !c.Minio.Enabled() {
		return fmt.Errorf("reports.archive requires minio.endpoint")
	}
	return nil
}

// FixturesURL is fixtures.base_url, or this server's own /fixtures route when
// it is unset. Call it after every port override has been applied.
func (c *Config) FixturesURL() string {
	if c.Fixtures.BaseURL != "" {
		return c.Fixtures.BaseURL
	}
	return fmt.Sprintf("http://localhost:%d/fixtures", c.Server.Port)
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}
