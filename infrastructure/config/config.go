package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Cors        CorsConfig
	Logger      LoggerConfig
	Sentry      SentryConfig
	RateLimiter RateLimiterConfig
	Notify      NotifyConfig
}

type ServerConfig struct {
	ExternalPort string
	RunMode      string
	Domain       string
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DbName          string
	SSLMode         string
	SqlitePath      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type CorsConfig struct {
	AllowOrigins string
}

type LoggerConfig struct {
	FilePath   string
	Encoding   string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

type SentryConfig struct {
	Dsn   string
	Debug bool
}

type RateLimiterConfig struct {
	RequestsPerWindow int
	Window            time.Duration
}

type NotifyConfig struct {
	// Enabled is a process-wide kill switch on top of per-space configuration.
	Enabled bool
	Timeout time.Duration
}

func GetConfig() *Config {
	cfgPath := getConfigPath(os.Getenv("APP_ENV"))
	v, err := LoadConfig(cfgPath, "yml")
	if err != nil {
		log.Fatalf("Error in load config %v", err)
	}

	cfg, err := ParseConfig(v)
	if err != nil {
		log.Fatalf("Error in parse config %v", err)
	}

	if envPort := os.Getenv("PORT"); envPort != "" {
		cfg.Server.ExternalPort = envPort
		log.Printf("Set external port from environment -> %s", cfg.Server.ExternalPort)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		log.Printf("Unable to parse config: %v", err)
		return nil, err
	}
	return &cfg, nil
}

func LoadConfig(filename string, fileType string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetConfigName(filename)

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./infrastructure/config")
	v.AddConfigPath("../config")
	v.AddConfigPath("../../config")

	if wd, err := os.Getwd(); err == nil {
		v.AddConfigPath(filepath.Join(wd, "config"))
		v.AddConfigPath(filepath.Join(wd, "infrastructure", "config"))
	}

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		log.Printf("Unable to read config: %v", err)
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}

	log.Printf("Using config file: %s", v.ConfigFileUsed())
	return v, nil
}

func getConfigPath(env string) string {
	switch env {
	case "docker":
		return "config-docker"
	case "production":
		return "config-production"
	default:
		return "config-development"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.ExternalPort == "" {
		return errors.New("server.externalPort is required")
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			return errors.New("database.host is required")
		}
		if c.Database.Port == "" {
			return errors.New("database.port is required")
		}
		if c.Database.DbName == "" {
			return errors.New("database.dbName is required")
		}
	case "sqlite":
		if c.Database.SqlitePath == "" {
			return errors.New("database.sqlitePath is required")
		}
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}

	if c.RateLimiter.RequestsPerWindow <= 0 {
		return errors.New("rateLimiter.requestsPerWindow must be positive")
	}
	if c.RateLimiter.Window <= 0 {
		return errors.New("rateLimiter.window must be positive")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.RunMode == "debug" || c.Server.RunMode == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.RunMode == "release" || c.Server.RunMode == "production"
}

func (c *Config) GetPostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DbName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetServerAddress() string {
	return fmt.Sprintf(":%s", c.Server.ExternalPort)
}

// NotifyTimeout bounds the Telegram round trip so a slow third party cannot
// hold a background goroutine indefinitely.
func (c *Config) NotifyTimeout() time.Duration {
	if c.Notify.Timeout <= 0 {
		return 10 * time.Second
	}
	return c.Notify.Timeout
}
