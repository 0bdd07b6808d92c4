// Package config resolves runtime settings from defaults, an optional config
// file, and DYNAFORM_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the CLI and server need to run.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Schema SchemaConfig `mapstructure:"schema"`
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig covers the HTTP surface.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SchemaConfig covers where the form description comes from.
type SchemaConfig struct {
	// Source is a URL or a local file path.
	Source         string        `mapstructure:"source"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// RenderConfig selects the output renderer.
type RenderConfig struct {
	Renderer string `mapstructure:"renderer"`
}

// LogConfig covers structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Schema: SchemaConfig{
			RequestTimeout: 10 * time.Second,
		},
		Render: RenderConfig{
			Renderer: "vanilla",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load layers an optional YAML config file and environment variables over the
// defaults. Env keys follow DYNAFORM_SECTION_KEY, e.g. DYNAFORM_SERVER_ADDR.
func Load(configFile string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("DYNAFORM")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	setDefaults(v, cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("schema.source", cfg.Schema.Source)
	v.SetDefault("schema.request_timeout", cfg.Schema.RequestTimeout)
	v.SetDefault("render.renderer", cfg.Render.Renderer)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.pretty", cfg.Log.Pretty)
}
