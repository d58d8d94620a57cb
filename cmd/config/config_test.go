package config

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("WEB_API_BASE_URL", "http://api.internal:8080")
	t.Setenv("WEB_API_TIMEOUT", "3s")
	t.Setenv("RABBITMQ_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "http://api.internal:8080", cfg.Web.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Web.APITimeout)
	assert.True(t, cfg.RabbitMQ.Enabled)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db",
		Port:     3306,
		User:     "inventory",
		Password: "secret",
		Name:     "nis_inventory",
	}}

	parsed, err := mysql.ParseDSN(cfg.GetDSN())
	require.NoError(t, err)

	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "inventory", parsed.User)
	assert.Equal(t, "nis_inventory", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.ClientFoundRows)
	assert.True(t, parsed.MultiStatements)
}
