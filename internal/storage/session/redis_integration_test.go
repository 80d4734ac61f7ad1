package session_test

import (
	"context"
	"testing"
	"time"

	"eterno_memorial/internal/config"
	redisapp "eterno_memorial/internal/storage/redis"
	"eterno_memorial/internal/storage/session"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestRedis(t *testing.T) *redisapp.Client {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redisapp.NewClient(config.RedisConf{
		RedisAddr: host + ":" + port.Port(),
	})

	t.Cleanup(func() {
		client.Close()
		redisContainer.Terminate(ctx)
	})

	return client
}

func TestRedisStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	store := session.NewRedis(setupTestRedis(t), time.Hour)

	require.NoError(t, store.SetToken(ctx, "integration-token"))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "integration-token", token)

	require.NoError(t, store.Clear(ctx))

	_, err = store.Token(ctx)
	require.Error(t, err)
}
