package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/hotelmadagascar/concierge/internal/config"
)

func TestBuildRedisClientVerify(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &appconfig.Config{RedisAddr: mr.Addr()}
	client := BuildRedisClient(context.Background(), cfg, nil, true)
	require.NotNil(t, client)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestBuildRedisClientUnavailable(t *testing.T) {
	cfg := &appconfig.Config{RedisAddr: "127.0.0.1:1"}
	client := BuildRedisClient(context.Background(), cfg, nil, true)
	assert.Nil(t, client)
}

func TestBuildRedisClientDisabled(t *testing.T) {
	assert.Nil(t, BuildRedisClient(context.Background(), &appconfig.Config{}, nil, false))
	assert.Nil(t, BuildRedisClient(context.Background(), nil, nil, false))
}

func TestBuildDatabaseDisabled(t *testing.T) {
	db, err := BuildDatabase(context.Background(), &appconfig.Config{}, nil)
	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestBuildCatalogDefaultSeed(t *testing.T) {
	store, err := BuildCatalog(&appconfig.Config{}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, store.Services())
}

func TestBuildCatalogFromSeedFile(t *testing.T) {
	seed := `{
		"services": [
			{"id": "svc_pool", "name": {"en": "Pool Party", "es": "Fiesta de Piscina"}, "type": "pool"}
		],
		"knowledge": [
			{"id": "faq_pool_en", "lang": "en", "q_variants": ["do you have a pool"], "answer": "Yes, heated."}
		]
	}`
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	store, err := BuildCatalog(&appconfig.Config{SeedPath: path}, nil)
	require.NoError(t, err)
	require.Len(t, store.Services(), 1)
	assert.Equal(t, "Pool Party", store.Services()[0].Name.EN)
}

func TestBuildCatalogBadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := BuildCatalog(&appconfig.Config{SeedPath: path}, nil)
	assert.Error(t, err)
}
