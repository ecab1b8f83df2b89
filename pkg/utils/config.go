package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
}

type AppConfig struct {
	Name              string `validate:"required"`
	Port              string `validate:"required,numeric"`
	Debug             bool
	LogPath           string
	AdminResetEnabled bool
}

type HTTPConfig struct {
	MaxBodyBytes    int64         `validate:"gt=0"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	IdleTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"port":  "PORT",
	"debug": "DEBUG",
}

// LoadConfig reads envFile when it exists, then the environment, then any
// changed flags. A missing envFile is not an error.
func LoadConfig(envFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "moviehub")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("READ_TIMEOUT", 10*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("ADMIN_RESET_ENABLED", false)

	if envFile != "" {
		_, err := os.Stat(envFile)
		switch {
		case err == nil:
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", envFile, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("stat config %s: %w", envFile, err)
		}
	}

	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Name:              v.GetString("APP_NAME"),
			Port:              v.GetString("PORT"),
			Debug:             v.GetBool("DEBUG"),
			LogPath:           v.GetString("LOG_PATH"),
			AdminResetEnabled: v.GetBool("ADMIN_RESET_ENABLED"),
		},
		HTTP: HTTPConfig{
			MaxBodyBytes:    v.GetInt64("MAX_BODY_BYTES"),
			ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("IDLE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
