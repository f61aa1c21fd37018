package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-portal/internal/config"
	"github.com/spec-kit/employee-portal/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "employee-portal", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, domain.DefaultCatalog(), cfg.Employees.Catalog())
	assert.False(t, cfg.Employees.EmailCaseInsensitive)
	assert.Equal(t, 30*time.Minute, cfg.Forms.SessionTTL)
	assert.Equal(t, time.Minute, cfg.Forms.SweepInterval)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("I18N_DEFAULT_LANGUAGE", "tr")
	t.Setenv("EMPLOYEES_DEPARTMENTS", " Tech , Analytics,Design ")
	t.Setenv("EMPLOYEES_POSITIONS", "Junior,Senior")
	t.Setenv("EMPLOYEES_EMAIL_CASE_INSENSITIVE", "true")
	t.Setenv("FORM_SESSION_TTL_MINUTES", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.App.Addr())
	assert.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.False(t, cfg.Logger.Development)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "tr", cfg.I18n.DefaultLanguage)
	assert.Equal(t, []domain.Department{"Tech", "Analytics", "Design"}, cfg.Employees.Departments)
	assert.Equal(t, []domain.Position{"Junior", "Senior"}, cfg.Employees.Positions)
	assert.True(t, cfg.Employees.EmailCaseInsensitive)
	assert.Equal(t, 5*time.Minute, cfg.Forms.SessionTTL)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := config.Load()
	require.ErrorContains(t, err, "invalid REDIS_DB")
}

func TestLoad_EmptyDepartments(t *testing.T) {
	t.Setenv("EMPLOYEES_DEPARTMENTS", " , ")

	_, err := config.Load()
	require.ErrorContains(t, err, "EMPLOYEES_DEPARTMENTS")
}
