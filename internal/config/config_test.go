package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "taxsarthi", cfg.AppName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 18.0, cfg.GSTRatePercent)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GST_RATE_PERCENT", "12")
	t.Setenv("SEED_DEMO_ORDERS", "false")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 12.0, cfg.GSTRatePercent)
	assert.False(t, cfg.SeedDemoOrders)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, Config{Environment: "production"}.IsProduction())
	assert.True(t, Config{Environment: " Production "}.IsProduction())
	assert.False(t, Config{Environment: "development"}.IsProduction())
	assert.False(t, Config{}.IsProduction())
}

func TestGetenvBool(t *testing.T) {
	t.Setenv("FLAG", "yes")
	assert.True(t, getenvBool("FLAG", false))

	t.Setenv("FLAG", "off")
	assert.False(t, getenvBool("FLAG", true))

	t.Setenv("FLAG", "garbage")
	assert.True(t, getenvBool("FLAG", true))
}

func TestGetenvFloat(t *testing.T) {
	t.Setenv("RATE", "28.5")
	assert.Equal(t, 28.5, getenvFloat("RATE", 18))

	t.Setenv("RATE", "not-a-number")
	assert.Equal(t, 18.0, getenvFloat("RATE", 18))
}
