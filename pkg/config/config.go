package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env        string
	Port       int
	APIPrefix  string
	EnableDocs bool

	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Dashboard DashboardConfig
	Expiry    ExpiryConfig
	Payroll   PayrollConfig
	Sessions  SessionConfig
	Export    ExportConfig
}

type RedisConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// DashboardConfig governs dashboard highlights and cache tuning.
type DashboardConfig struct {
	CacheTTL           time.Duration
	HighlightCountries []string
	HighlightStatuses  []string
}

// ExpiryConfig sets the look-ahead window for document expiry alerts.
type ExpiryConfig struct {
	WindowDays int
}

// PayrollConfig holds the fixed divisor used to derive a daily wage.
type PayrollConfig struct {
	DivisorDays int
}

// ExportConfig toggles file rendering details.
type ExportConfig struct {
	CSVWithBOM bool
}

// SessionConfig bounds the per-session store registry.
type SessionConfig struct {
	IdleTTL     time.Duration
	MaxSessions int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.EnableDocs = v.GetBool("ENABLE_DOCS")

	cfg.Redis = RedisConfig{
		Enabled:     v.GetBool("REDIS_ENABLED"),
		Host:        v.GetString("REDIS_HOST"),
		Port:        v.GetInt("REDIS_PORT"),
		Password:    v.GetString("REDIS_PASSWORD"),
		DB:          v.GetInt("REDIS_DB"),
		PoolSize:    v.GetInt("REDIS_POOL_SIZE"),
		DialTimeout: parseDuration(v.GetString("REDIS_DIAL_TIMEOUT"), 5*time.Second),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Dashboard = DashboardConfig{
		CacheTTL:           parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
		HighlightCountries: splitAndTrim(v.GetString("DASHBOARD_HIGHLIGHT_COUNTRIES")),
		HighlightStatuses:  splitAndTrim(v.GetString("DASHBOARD_HIGHLIGHT_STATUSES")),
	}

	windowDays := v.GetInt("EXPIRY_WINDOW_DAYS")
	if windowDays <= 0 {
		windowDays = 180
	}
	cfg.Expiry = ExpiryConfig{WindowDays: windowDays}

	divisor := v.GetInt("PAYROLL_DIVISOR_DAYS")
	if divisor <= 0 {
		divisor = 30
	}
	cfg.Payroll = PayrollConfig{DivisorDays: divisor}

	cfg.Sessions = SessionConfig{
		IdleTTL:     parseDuration(v.GetString("SESSION_IDLE_TTL"), 2*time.Hour),
		MaxSessions: v.GetInt("SESSION_MAX"),
	}

	cfg.Export = ExportConfig{CSVWithBOM: v.GetBool("EXPORT_CSV_BOM")}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("ENABLE_DOCS", true)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	v.SetDefault("DASHBOARD_HIGHLIGHT_COUNTRIES", "Saudi Arabia")
	v.SetDefault("DASHBOARD_HIGHLIGHT_STATUSES", "Visa Stamped,Deployed")

	v.SetDefault("EXPIRY_WINDOW_DAYS", 180)
	v.SetDefault("PAYROLL_DIVISOR_DAYS", 30)

	v.SetDefault("SESSION_IDLE_TTL", "2h")
	v.SetDefault("SESSION_MAX", 1000)
	v.SetDefault("EXPORT_CSV_BOM", false)
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
