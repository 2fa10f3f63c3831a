package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "almacen-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_PuertoDesdeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_PuertoMalformadoFalla(t *testing.T) {
	t.Setenv("HTTP_PORT", "ochenta")

	_, err := config.Load()
	require.Error(t, err, "un puerto no numérico debe abortar la carga, no degradar a 0")
	assert.Contains(t, err.Error(), "HTTP_PORT")
}
