// Package config loads the settings of the conjugador binaries from
// defaults, an optional conjugador.toml file and CONJUGADOR_* environment
// variables, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable: server.addr is read from
// CONJUGADOR_SERVER_ADDR.
const EnvPrefix = "CONJUGADOR"

// Config is the complete configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `mapstructure:"addr"`
	// CORSOrigins lists the origins allowed to call the API (default "*").
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LogConfig controls logging.
type LogConfig struct {
	// JSON switches to structured JSON logs.
	JSON bool `mapstructure:"json"`
	// Level is a zap level name (default "info").
	Level string `mapstructure:"level"`
}

// DefaultsConfig holds the request values used when a caller gives none.
type DefaultsConfig struct {
	// Variant is one of bp, bp-pre, ep, ep-pre (default "bp").
	Variant string `mapstructure:"variant"`
	// Mood is one of regular, passive, progressive (default "regular").
	Mood string `mapstructure:"mood"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Defaults: DefaultsConfig{
			Variant: "bp",
			Mood:    "regular",
		},
	}
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("defaults.variant", d.Defaults.Variant)
	v.SetDefault("defaults.mood", d.Defaults.Mood)
}

// New returns a viper instance with defaults and environment binding set
// up. When path is empty, conjugador.toml is looked up in the working
// directory and in $HOME/.config/conjugador.
func New(path string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("conjugador")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/conjugador")
	}
	return v
}

// Load reads the configuration. A missing conjugador.toml is not an error
// unless path names it explicitly.
func Load(path string) (*Config, error) {
	return LoadWithViper(New(path), path != "")
}

// LoadWithViper reads the configuration from v. required makes a missing
// config file an error.
func LoadWithViper(v *viper.Viper, required bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if required || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}
