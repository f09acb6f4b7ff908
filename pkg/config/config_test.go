package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/precios-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, "es", cfg.Report.Locale)
}

func TestLoad_BackendDesdeEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Firestore")
	t.Setenv("FIRESTORE_PROJECT_ID", "precios-demo")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendFirestore, cfg.Store.Backend)
	assert.Equal(t, "precios-demo", cfg.Firestore.ProjectID)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		HTTP:  config.HTTPConfig{Port: 8080},
		Store: config.StoreConfig{Backend: config.BackendMemory},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Store.Backend = "redis"
	assert.ErrorContains(t, cfg.Validate(), "STORE_BACKEND")

	cfg.Store.Backend = config.BackendFirestore
	cfg.HTTP.Port = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "FIRESTORE_PROJECT_ID")
	assert.ErrorContains(t, err, "HTTP_PORT")
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "precios", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/precios?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
