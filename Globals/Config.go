package Globals

import (
	"Encore/Retry"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration. Every field can be set from the environment
// (upper-cased key), from .env, or from the YAML file named by CONFIG_FILE.
type Config struct {

	DiscordToken string `mapstructure:"discord_token"`
	Prefix       string `mapstructure:"prefix"`

	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	Cooldown          time.Duration `mapstructure:"cooldown"`
	AdmissionCapacity int           `mapstructure:"admission_capacity"`
	AdmissionSweep    time.Duration `mapstructure:"admission_sweep"`
	RedisURL          string        `mapstructure:"redis_url"`

	MaxRetries     int           `mapstructure:"max_retries"`
	BaseDelay      time.Duration `mapstructure:"base_delay"`
	MaxDelay       time.Duration `mapstructure:"max_delay"`
	BackoffFactor  float64       `mapstructure:"backoff_factor"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	YtDlpPath  string        `mapstructure:"ytdlp_path"`
	QueueLimit int           `mapstructure:"queue_limit"`
	QueueIdle  time.Duration `mapstructure:"queue_idle"`
	QueueSweep time.Duration `mapstructure:"queue_sweep"`

}

func setDefaults(V *viper.Viper) {

	Defaults := Retry.DefaultConfig()

	V.SetDefault("discord_token", "")
	V.SetDefault("prefix", "w!")
	V.SetDefault("port", 8080)
	V.SetDefault("log_level", "info")

	V.SetDefault("cooldown", 5*time.Second)
	V.SetDefault("admission_capacity", 10000)
	V.SetDefault("admission_sweep", time.Minute)
	V.SetDefault("redis_url", "")

	V.SetDefault("max_retries", Defaults.MaxRetries)
	V.SetDefault("base_delay", Defaults.BaseDelay)
	V.SetDefault("max_delay", Defaults.MaxDelay)
	V.SetDefault("backoff_factor", Defaults.BackoffFactor)
	V.SetDefault("request_timeout", 2*time.Minute)

	V.SetDefault("ytdlp_path", "yt-dlp")
	V.SetDefault("queue_limit", 100)
	V.SetDefault("queue_idle", 30*time.Minute)
	V.SetDefault("queue_sweep", time.Minute)

}

// LoadConfig reads .env (if present), the optional CONFIG_FILE and the environment.
func LoadConfig() (*Config, error) {

	_ = godotenv.Load(".env") // optional, as in development setups

	V := viper.New()

	setDefaults(V)

	V.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	V.AutomaticEnv()

	if File := os.Getenv("CONFIG_FILE"); File != "" {

		V.SetConfigFile(File)

		if ErrorReading := V.ReadInConfig(); ErrorReading != nil {

			return nil, fmt.Errorf("failed to read config file %s: %w", File, ErrorReading)

		}

	}

	Loaded := &Config{}

	if ErrorDecoding := V.Unmarshal(Loaded); ErrorDecoding != nil {

		return nil, fmt.Errorf("failed to unmarshal config: %w", ErrorDecoding)

	}

	if ErrorValidating := Loaded.Validate(); ErrorValidating != nil {

		return nil, ErrorValidating

	}

	return Loaded, nil

}

func (C *Config) Validate() error {

	if C.Prefix == "" {

		return fmt.Errorf("prefix must not be empty")

	}

	if C.Cooldown < 0 {

		return fmt.Errorf("cooldown must not be negative")

	}

	if C.QueueLimit < 0 || C.QueueIdle < 0 {

		return fmt.Errorf("queue limit and idle time must not be negative")

	}

	if ErrorValidating := C.RetryConfig().Validate(); ErrorValidating != nil {

		return fmt.Errorf("invalid retry settings: %w", ErrorValidating)

	}

	return nil

}

// RetryConfig returns the executor configuration.
func (C *Config) RetryConfig() Retry.Config {

	return Retry.Config{

		MaxRetries:    C.MaxRetries,
		BaseDelay:     C.BaseDelay,
		MaxDelay:      C.MaxDelay,
		BackoffFactor: C.BackoffFactor,

	}

}
