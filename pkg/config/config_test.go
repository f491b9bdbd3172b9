package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreBadger, cfg.Store.Driver)
	assert.Equal(t, 25, cfg.Ledger.KgPerBox)
	assert.True(t, decimal.NewFromInt(5).Equal(cfg.Scale.TolerancePct), cfg.Scale.TolerancePct.String())
	assert.Equal(t, 256, cfg.QR.Size)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("STORE_PATH", "/tmp/romaneio.db")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RECONCILIATION_TOLERANCE_PCT", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, decimal.NewFromInt(3).Equal(cfg.Scale.TolerancePct), cfg.Scale.TolerancePct.String())
}

func TestLoad_FractionalTolerance(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RECONCILIATION_TOLERANCE_PCT", "5.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5.5", cfg.Scale.TolerancePct.String())
}

func TestLoad_InvalidTolerance(t *testing.T) {
	for _, raw := range []string{"cinco", "5,5", "-1"} {
		t.Run(raw, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("RECONCILIATION_TOLERANCE_PCT", raw)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "romaneio", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/romaneio?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
