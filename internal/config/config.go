package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	I18n      I18nConfig
	Employees EmployeesConfig
	Forms     FormsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// RedisConfig holds the optional change-feed connection. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level       string
	Development bool
}

// I18nConfig selects the language used when a client has not picked one.
type I18nConfig struct {
	DefaultLanguage string
}

// EmployeesConfig describes the closed sets exposed by the form and the store policy.
type EmployeesConfig struct {
	Departments          []domain.Department
	Positions            []domain.Position
	EmailCaseInsensitive bool
}

// FormsConfig bounds the lifetime of open form sessions.
type FormsConfig struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from the environment (and a .env file when present),
// applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "employee-portal")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("HTTP_REQUEST_TIMEOUT_SECONDS", 30)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_CHANNEL", "employee-portal:events")
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "en")
	v.SetDefault("EMPLOYEES_DEPARTMENTS", "Tech,Analytics")
	v.SetDefault("EMPLOYEES_POSITIONS", "Junior,Medior,Senior")
	v.SetDefault("EMPLOYEES_EMAIL_CASE_INSENSITIVE", false)
	v.SetDefault("FORM_SESSION_TTL_MINUTES", 30)
	v.SetDefault("FORM_SWEEP_INTERVAL_SECONDS", 60)

	redisDB := v.GetInt("REDIS_DB")
	if raw := v.GetString("REDIS_DB"); raw != "" && raw != "0" && redisDB == 0 {
		return nil, fmt.Errorf("invalid REDIS_DB: %q", raw)
	}

	departments := splitList(v.GetString("EMPLOYEES_DEPARTMENTS"))
	positions := splitList(v.GetString("EMPLOYEES_POSITIONS"))
	if len(departments) == 0 {
		return nil, fmt.Errorf("EMPLOYEES_DEPARTMENTS must list at least one department")
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("EMPLOYEES_POSITIONS must list at least one position")
	}

	appEnv := v.GetString("APP_ENV")

	cfg := &Config{
		App: AppConfig{
			Name:                  v.GetString("APP_NAME"),
			Env:                   appEnv,
			Host:                  v.GetString("APP_HOST"),
			Port:                  v.GetString("APP_PORT"),
			Version:               v.GetString("APP_VERSION"),
			RequestTimeoutSeconds: v.GetInt("HTTP_REQUEST_TIMEOUT_SECONDS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       redisDB,
			Channel:  v.GetString("REDIS_CHANNEL"),
		},
		Logger: LoggerConfig{
			Level:       v.GetString("LOG_LEVEL"),
			Development: appEnv == "development",
		},
		I18n: I18nConfig{
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
		Employees: EmployeesConfig{
			Departments:          make([]domain.Department, 0, len(departments)),
			Positions:            make([]domain.Position, 0, len(positions)),
			EmailCaseInsensitive: v.GetBool("EMPLOYEES_EMAIL_CASE_INSENSITIVE"),
		},
		Forms: FormsConfig{
			SessionTTL:    time.Duration(v.GetInt("FORM_SESSION_TTL_MINUTES")) * time.Minute,
			SweepInterval: time.Duration(v.GetInt("FORM_SWEEP_INTERVAL_SECONDS")) * time.Second,
		},
	}

	for _, d := range departments {
		cfg.Employees.Departments = append(cfg.Employees.Departments, domain.Department(d))
	}
	for _, p := range positions {
		cfg.Employees.Positions = append(cfg.Employees.Positions, domain.Position(p))
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// Catalog returns the configured departments and positions.
func (e EmployeesConfig) Catalog() domain.Catalog {
	return domain.Catalog{
		Departments: append([]domain.Department(nil), e.Departments...),
		Positions:   append([]domain.Position(nil), e.Positions...),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
