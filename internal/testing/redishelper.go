// Package testing provides shared helpers for integration tests that need a
// real Redis server.
package testing

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const redisImage = "redis:7-alpine"

var (
	testContainerOnce sync.Once
	testContainerAddr string
	testContainerErr  error
)

func getOrStartTestContainer() (string, error) {
	testContainerOnce.Do(func() {
		ctx := context.Background()
		container, err := tcredis.Run(ctx, redisImage)
		if err != nil {
			testContainerErr = err
			return
		}
		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			testContainerErr = err
			return
		}
		testContainerAddr = strings.TrimPrefix(connStr, "redis://")
	})
	return testContainerAddr, testContainerErr
}

// GetTestRedisAddr returns the host:port of a Redis server for tests.
// Priority: EXPLOAD_TEST_REDIS env var > auto-started testcontainer > skip test.
func GetTestRedisAddr(t *testing.T) string {
	t.Helper()

	if addr := os.Getenv("EXPLOAD_TEST_REDIS"); addr != "" {
		return addr
	}

	addr, err := getOrStartTestContainer()
	if err != nil {
		t.Skipf("EXPLOAD_TEST_REDIS not set and Docker unavailable: %v", err)
	}
	return addr
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// RequireRedis combines SkipIfShort and GetTestRedisAddr for convenience.
func RequireRedis(t *testing.T) string {
	t.Helper()
	SkipIfShort(t)
	return GetTestRedisAddr(t)
}
