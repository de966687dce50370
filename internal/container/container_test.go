package container

import (
	"context"
	"testing"

	"marvel/catalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutOptionalBackends(t *testing.T) {
	cfg := &config.Config{
		Marvel: config.MarvelConfig{BaseURL: "http://localhost:1/v1/public", APIKey: "k"},
	}

	c, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Client)
	assert.NotNil(t, c.StateManager)
	assert.NotNil(t, c.Service)
	assert.Nil(t, c.Repository)
}

func TestNewFailsOnUnreachableRedis(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1},
	}

	_, err := New(context.Background(), cfg)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
