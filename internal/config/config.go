package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Databases DatabasesConfig `mapstructure:"databases"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig selects the store backing one schema variant.
type DatabaseConfig struct {
	Provider string `mapstructure:"provider"`
	DSN      string `mapstructure:"dsn"`
	Verbose  bool   `mapstructure:"verbose"`
}

type DatabasesConfig struct {
	JiraKiller DatabaseConfig `mapstructure:"jirakiller"`
	Test5      DatabaseConfig `mapstructure:"test5"`
	Blog       DatabaseConfig `mapstructure:"blog"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Load reads configuration from defaults, an optional config file, a .env
// file and DEMODB_* environment variables, in increasing precedence.
// An empty path searches ./configs and the working directory for config.yaml.
func Load(path string) (*Config, error) {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DEMODB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "debug")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	for _, name := range []string{"jirakiller", "test5", "blog"} {
		v.SetDefault("databases."+name+".provider", "sqlite")
		v.SetDefault("databases."+name+".dsn", name+".sqlite")
		v.SetDefault("databases."+name+".verbose", false)
	}
}
