package infra_test

import (
	"testing"

	"packingapp/internal/infra"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis_EmptyURLDisablesCache(t *testing.T) {
	rdb, err := infra.NewRedis("")
	require.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := infra.NewRedis("http://no-es-redis")
	assert.Error(t, err)
}

func TestSetupLogger_Level(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	infra.SetupLogger("production", "warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	infra.SetupLogger("production", "bogus")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
