package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/recordstore"
)

const (
	productsResource = "productos.json"
	cartsResource    = "carrito.json"
)

type event struct {
	name    string
	payload any
}

// recordingBroadcaster guarda los eventos difundidos.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []event
}

func (b *recordingBroadcaster) Broadcast(name string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event{name: name, payload: payload})
}

func (b *recordingBroadcaster) all() []event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]event(nil), b.events...)
}

// newStore devuelve un store en memoria con ambos recursos inicializados en [].
func newStore(t *testing.T) *recordstore.MemoryStore {
	t.Helper()
	store := recordstore.NewMemoryStore()
	_, err := recordstore.Bootstrap(context.Background(), store, productsResource, cartsResource)
	require.NoError(t, err)
	return store
}

func seqIDs(prefix string, ids ...string) func() string {
	n := 0
	return func() string {
		if n < len(ids) {
			id := ids[n]
			n++
			return id
		}
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func productsIn(t *testing.T, store *recordstore.MemoryStore) []entity.Product {
	t.Helper()
	products, err := recordstore.NewCollection[entity.Product](store, productsResource).LoadAll(context.Background())
	require.NoError(t, err)
	return products
}
