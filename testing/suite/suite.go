package suite

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerTTL    = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "7-alpine"
)

// Suite is a throwaway Redis server for repository tests.
type Suite struct {
	*testing.T

	Addr    string
	Storage *redis.Client
}

// New - starts a Redis container and returns a flushed client for it; skipped with -short.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Redis-backed test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	addr := startRedis(t)

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() {
		_ = client.Close()
	})

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Addr:    addr,
		Storage: client,
	}
}

// startRedis - runs the container and waits until it answers PING.
func startRedis(t *testing.T) string {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	pool.MaxWait = maxWaitDuration

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis container: %v", err)
		}
	})

	// hard kill in case Cleanup never runs
	_ = resource.Expire(containerTTL)

	addr := resource.GetHostPort(redisPort)

	if err = pool.Retry(func() error {
		probe := redis.NewClient(&redis.Options{Addr: addr})
		defer probe.Close()

		return probe.Ping(context.Background()).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis at %s: %v", addr, err)
	}

	return addr
}
