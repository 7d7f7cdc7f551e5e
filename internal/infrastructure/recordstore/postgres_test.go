package recordstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/recordstore"
)

// fakeQuerier registra los Exec y responde QueryRow con una fila fija.
type fakeQuerier struct {
	execs [][]any
	row   pgx.Row
}

func (f *fakeQuerier) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return f.row }

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestPostgresStore_WriteEnviaCatalogValueComoDecimal(t *testing.T) {
	q := &fakeQuerier{}
	store := recordstore.NewPostgresStore(q)

	payload := []byte(`[{"id":"a","price":10.5,"stock":2},{"id":"b","price":3,"stock":0.5},{"id":"c","price":7}]`)
	require.NoError(t, store.Write(context.Background(), "productos.json", payload))

	require.Len(t, q.execs, 1)
	args := q.execs[0]
	require.Len(t, args, 3)
	assert.Equal(t, "productos.json", args[0])
	assert.Equal(t, string(payload), args[1])
	value, ok := args[2].(decimal.Decimal)
	require.True(t, ok, "catalog_value debe viajar como decimal.Decimal")
	assert.True(t, value.Equal(decimal.RequireFromString("22.5")), value.String())
}

func TestPostgresStore_ReadSinFilaEsRecursoInexistente(t *testing.T) {
	store := recordstore.NewPostgresStore(&fakeQuerier{row: errRow{err: pgx.ErrNoRows}})

	_, err := store.Read(context.Background(), "productos.json")
	assert.True(t, errors.Is(err, domain.ErrResourceMissing))
}

func TestCatalogValue(t *testing.T) {
	assert.True(t, recordstore.CatalogValue([]byte(`[]`)).IsZero())
	assert.True(t, recordstore.CatalogValue([]byte(`[{"id":"c1","products":[{"id":"p1","quantity":2}]}]`)).IsZero(), "los carritos no tienen precio")
	assert.True(t, recordstore.CatalogValue([]byte(`no es json`)).IsZero())
	assert.True(t, recordstore.CatalogValue([]byte(`[{"price":"1.25","stock":4}]`)).Equal(decimal.NewFromInt(5)))
}
