package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiyin-tech/expload/internal/logging"
	"github.com/qiyin-tech/expload/internal/services"
	"github.com/qiyin-tech/expload/internal/store"
	testhelpers "github.com/qiyin-tech/expload/internal/testing"
)

func setupIntegration(t *testing.T) (*services.LoadService, *goredis.Client) {
	t.Helper()
	addr := testhelpers.RequireRedis(t)

	st, err := store.Connect(context.Background(), addr, "", logging.NewNullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	inspect := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = inspect.Close() })

	return services.NewLoadService(st, logging.NewNullLogger()), inspect
}

func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadABParams_EndToEnd(t *testing.T) {
	svc, inspect := setupIntegration(t)
	ctx := context.Background()
	t.Cleanup(func() { inspect.HDel(ctx, store.KeyABParams, "it_exp_a:show", "it_exp_b:show") })

	path := writeInputFile(t, "it_exp_a=0.25\nit_exp_b={\"rate\":0.5}\n")

	summary, err := svc.LoadABParams(ctx, path, "show")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Records)

	got, err := inspect.HGet(ctx, store.KeyABParams, "it_exp_a:show").Result()
	require.NoError(t, err)
	assert.Equal(t, "0.25", got)

	// Values are opaque strings; JSON objects pass through untouched.
	got, err = inspect.HGet(ctx, store.KeyABParams, "it_exp_b:show").Result()
	require.NoError(t, err)
	assert.Equal(t, `{"rate":0.5}`, got)
}

func TestLoadActionScores_EndToEnd(t *testing.T) {
	svc, inspect := setupIntegration(t)
	ctx := context.Background()
	key := store.VersionScoresKey("it_v1")
	t.Cleanup(func() { inspect.Del(ctx, key) })

	path := writeInputFile(t, "it_v1=[0.1,0.2,0.3]\n")

	summary, err := svc.LoadActionScores(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Fields)

	got, err := inspect.HGetAll(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"0": "0.1", "1": "0.2", "2": "0.3"}, got)
}

func TestLoadActionChoice_AllMalformedIssuesNoWrite(t *testing.T) {
	svc, inspect := setupIntegration(t)
	ctx := context.Background()

	// Snapshot the hash before the failed load.
	before, err := inspect.HGetAll(ctx, store.KeyDefaultChoice).Result()
	require.NoError(t, err)

	path := writeInputFile(t, "no delimiter here\n")
	_, err = svc.LoadActionChoice(ctx, path)
	require.Error(t, err)

	after, err := inspect.HGetAll(ctx, store.KeyDefaultChoice).Result()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
