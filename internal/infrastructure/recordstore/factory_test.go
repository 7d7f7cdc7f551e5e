package recordstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/recordstore"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

func TestOpen_DriversLocales(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, driver := range []string{config.DriverFile, config.DriverMemory, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{Storage: config.StorageConfig{
				Driver:     driver,
				Dir:        filepath.Join(dir, driver),
				SQLitePath: filepath.Join(dir, driver+".db"),
			}}
			store, closer, err := recordstore.Open(ctx, cfg, metrics.New())
			require.NoError(t, err)
			t.Cleanup(func() { _ = closer() })

			require.NoError(t, store.Write(ctx, "productos.json", []byte("[]")))
			data, err := store.Read(ctx, "productos.json")
			require.NoError(t, err)
			assert.Equal(t, "[]", string(data))
		})
	}
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "mongo"}}
	_, _, err := recordstore.Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestOpen_S3SinBucket(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverS3}}
	_, _, err := recordstore.Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestBootstrap_SoloCreaLosFaltantes(t *testing.T) {
	ctx := context.Background()
	store := recordstore.NewMemoryStore()
	require.NoError(t, store.Write(ctx, "productos.json", []byte(`[{"id":"p1"}]`)))

	created, err := recordstore.Bootstrap(ctx, store, "productos.json", "carrito.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"carrito.json"}, created)

	data, err := store.Read(ctx, "productos.json")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, string(data), "un recurso existente no se sobreescribe")

	data, err = store.Read(ctx, "carrito.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
