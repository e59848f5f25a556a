package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Worker   *WorkerConfig   `mapstructure:"worker"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type WorkerConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Concurrency     int    `mapstructure:"concurrency"`
	ExpirySweepSpec string `mapstructure:"expiry_sweep_spec"`
}

// Load reads the YAML file at path. Every key can be overridden by an
// environment variable named after its path, e.g. API_PORT or POSTGRES_HOST.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	// Settings are read once at startup; a changed file only takes effect
	// after a restart.
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Warn("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

func (c *AppConfig) validate() error {
	switch {
	case c.API == nil:
		return fmt.Errorf("config: missing api section")
	case c.Gin == nil:
		return fmt.Errorf("config: missing gin section")
	case c.Postgres == nil:
		return fmt.Errorf("config: missing postgres section")
	case c.API.JWTSigningKey == "":
		return fmt.Errorf("config: api.jwt_signing_key is required")
	}

	if c.Redis == nil {
		c.Redis = &RedisConfig{}
	}
	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when the worker is enabled")
	}

	return nil
}
