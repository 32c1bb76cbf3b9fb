package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"required,oneof=json console"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	PublicURL       string        `mapstructure:"public_url" validate:"required,url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	URL    string `mapstructure:"url" validate:"required"`
}

// AuthConfig describes the external identity provider and local sessions.
type AuthConfig struct {
	Domain          string        `mapstructure:"domain" validate:"required,hostname"`
	ClientID        string        `mapstructure:"client_id" validate:"required"`
	ClientSecret    string        `mapstructure:"client_secret" validate:"required"`
	Audience        string        `mapstructure:"audience"`
	SessionSecret   string        `mapstructure:"session_secret" validate:"required,min=32"`
	SessionTTL      time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
	CookieName      string        `mapstructure:"cookie_name" validate:"required"`
	CookieDomain    string        `mapstructure:"cookie_domain"`
	CookieSecure    bool          `mapstructure:"cookie_secure"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval" validate:"gt=0"`
	LogoutReturnURL string        `mapstructure:"logout_return_url" validate:"omitempty,url"`
}

type SeedConfig struct {
	OnStart bool `mapstructure:"on_start"`
}

// IssuerURL is the identity provider's token issuer, always with a trailing slash.
func (a AuthConfig) IssuerURL() string {
	return "https://" + strings.TrimSuffix(a.Domain, "/") + "/"
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.public_url", "http://localhost:8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")

	v.SetDefault("auth.domain", "")
	v.SetDefault("auth.client_id", "")
	v.SetDefault("auth.client_secret", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("auth.session_secret", "")
	v.SetDefault("auth.session_ttl", 7*24*time.Hour)
	v.SetDefault("auth.cookie_name", "wisdom_session")
	v.SetDefault("auth.cookie_domain", "")
	v.SetDefault("auth.cookie_secure", false)
	v.SetDefault("auth.sweep_interval", 15*time.Minute)
	v.SetDefault("auth.logout_return_url", "")

	v.SetDefault("seed.on_start", true)
}

// LoadDotEnv loads a .env file unless the process runs on Railway, where the
// platform injects variables directly.
func LoadDotEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") != "" {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
	}
}

// Load reads configuration from defaults, an optional config file and
// WISDOM_* environment variables, in increasing precedence. Only the server
// and database sections are validated here so schema jobs run without
// identity provider credentials; Validate checks everything before serving.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WISDOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Older deployments only set these.
	if err := v.BindEnv("server.port", "WISDOM_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind server.port: %w", err)
	}
	if err := v.BindEnv("database.url", "WISDOM_DATABASE_URL", "DB_URL"); err != nil {
		return nil, fmt.Errorf("bind database.url: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file %s: %w", configFile, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validateStruct(cfg.Server); err != nil {
		return nil, err
	}
	if err := validateStruct(cfg.Database); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section, auth included.
func (c *Config) Validate() error {
	return validateStruct(c)
}

// validateStruct checks struct tags and returns a readable error.
func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
