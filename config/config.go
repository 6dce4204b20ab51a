package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Syllabus extraction specifics
	Syllabus       SyllabusConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SyllabusConfig struct {
	Timezone        string
	MaxUploadBytes  int64
	SessionCapacity int
	SessionTTLMin   int
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Syllabus extraction
	cfg.Syllabus.Timezone = viper.GetString("syllabus.timezone")
	cfg.Syllabus.MaxUploadBytes = viper.GetInt64("syllabus.max_upload_bytes")
	cfg.Syllabus.SessionCapacity = viper.GetInt("syllabus.session_capacity")
	cfg.Syllabus.SessionTTLMin = viper.GetInt("syllabus.session_ttl_min")
	cfg.Syllabus.RateLimitPerMin = viper.GetInt("syllabus.rate_limit_per_min")
	if tz := viper.GetString("syllabus_timezone"); tz != "" {
		cfg.Syllabus.Timezone = tz
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("syllabus.timezone", "America/Chicago")
	viper.SetDefault("syllabus.max_upload_bytes", 10*1024*1024)
	viper.SetDefault("syllabus.session_capacity", 256)
	viper.SetDefault("syllabus.session_ttl_min", 60)
	viper.SetDefault("syllabus.rate_limit_per_min", 30)
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
