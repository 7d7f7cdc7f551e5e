package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/feed"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/realtime"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/recordstore"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	productsResource = "productos.json"
	cartsResource    = "carrito.json"
)

type testEnv struct {
	app   *fiber.App
	store *recordstore.MemoryStore
	hub   *realtime.Hub
}

// buildTestApp arma la aplicación completa sobre un store en memoria.
// Con bootstrap=false los recursos no existen y toda lectura falla.
func buildTestApp(t *testing.T, bootstrap bool) *testEnv {
	t.Helper()
	store := recordstore.NewMemoryStore()
	if bootstrap {
		_, err := recordstore.Bootstrap(context.Background(), store, productsResource, cartsResource)
		require.NoError(t, err)
	}
	m := metrics.New()
	instrumented := recordstore.NewInstrumented(store, m)
	productRepo := recordstore.NewCollection[entity.Product](instrumented, productsResource)
	cartRepo := recordstore.NewCollection[entity.Cart](instrumented, cartsResource)
	hub := realtime.NewHub(8, logger.Nop(), m)
	t.Cleanup(hub.Close)

	app := fiber.New(fiber.Config{Views: apphttp.NewViewEngine()})
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(productRepo, hub),
		CartUC:    usecase.NewCartUseCase(cartRepo),
		ExportUC:  usecase.NewCatalogExportUseCase(productRepo, infrapdf.NewCatalogPDFGenerator(), feed.NewXMLFeedBuilder()),
		Hub:       hub,
		Metrics:   m,
		Log:       logger.Nop(),
		AppName:   "catalogo-test",
	})
	return &testEnv{app: app, store: store, hub: hub}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func (e *testEnv) createProduct(t *testing.T, body string) map[string]any {
	t.Helper()
	resp, raw := e.do(t, http.MethodPost, "/api/products", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	return decode(t, raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CreateYGet(t *testing.T) {
	env := buildTestApp(t, true)

	created := env.createProduct(t, `{"title":"A","code":"X","price":10,"stock":5}`)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, true, created["status"], "status debe ser true al crear")
	assert.Equal(t, []any{}, created["thumbnails"], "thumbnails debe ser [] si no se envía")
	assert.Equal(t, float64(10), created["price"], "price se serializa como número")

	resp, raw := env.do(t, http.MethodGet, "/api/products/"+created["id"].(string), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decode(t, raw))

	resp, raw = env.do(t, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestProducts_CuerpoVacioCreaProductoSinCampos(t *testing.T) {
	env := buildTestApp(t, true)

	created := env.createProduct(t, "")
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "", created["title"])
	assert.Equal(t, true, created["status"])
}

func TestProducts_StockFraccionarioSeAceptaTalCual(t *testing.T) {
	env := buildTestApp(t, true)

	created := env.createProduct(t, `{"title":"W","stock":2.5}`)
	assert.Equal(t, 2.5, created["stock"])

	resp, raw := env.do(t, http.MethodGet, "/api/products/"+created["id"].(string), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decode(t, raw))

	resp, raw = env.do(t, http.MethodPut, "/api/products/"+created["id"].(string), `{"stock":0.75}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, 0.75, decode(t, raw)["stock"])
}

func TestProducts_CuerpoInvalido(t *testing.T) {
	env := buildTestApp(t, true)

	resp, raw := env.do(t, http.MethodPost, "/api/products", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode(t, raw)["code"])
}

func TestProducts_ContentTypeNoSoportadoSeTrataComoCuerpoVacio(t *testing.T) {
	env := buildTestApp(t, true)

	for _, ct := range []string{"", "text/plain"} {
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"title":"W"}`))
		if ct != "" {
			req.Header.Set("Content-Type", ct)
		}
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		require.Equal(t, http.StatusCreated, resp.StatusCode, "content-type %q: %s", ct, raw)
		created := decode(t, raw)
		assert.Equal(t, "", created["title"], "content-type %q no se decodifica", ct)
		assert.Equal(t, true, created["status"])
	}

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("title=Form&code=F1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestProducts_UpdateParcialNoCambiaID(t *testing.T) {
	env := buildTestApp(t, true)
	created := env.createProduct(t, `{"title":"A","code":"X","price":10,"stock":5}`)
	id := created["id"].(string)

	resp, raw := env.do(t, http.MethodPut, "/api/products/"+id, `{"price":12,"id":"otro"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	updated := decode(t, raw)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, float64(12), updated["price"])
	assert.Equal(t, "A", updated["title"], "los campos ausentes se conservan")
	assert.Equal(t, float64(5), updated["stock"])

	resp, _ = env.do(t, http.MethodGet, "/api/products/otro", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_UpdateInexistente(t *testing.T) {
	env := buildTestApp(t, true)

	resp, raw := env.do(t, http.MethodPut, "/api/products/nope", `{"price":1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", string(raw))
}

func TestProducts_DeleteLuego404(t *testing.T) {
	env := buildTestApp(t, true)
	created := env.createProduct(t, `{"title":"A"}`)
	id := created["id"].(string)

	resp, _ := env.do(t, http.MethodDelete, "/api/products/"+id, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw := env.do(t, http.MethodGet, "/api/products/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", string(raw))

	resp, _ = env.do(t, http.MethodDelete, "/api/products/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "borrar un id inexistente responde 404")
}

func TestProducts_RecursoInexistenteResponde500(t *testing.T) {
	env := buildTestApp(t, false)

	resp, raw := env.do(t, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", decode(t, raw)["code"])

	resp, _ = env.do(t, http.MethodPost, "/api/products", `{"title":"A"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	_, err := env.store.Read(context.Background(), productsResource)
	assert.Error(t, err, "el servidor no debe crear el recurso")
}

func TestProducts_MutacionDifundeListaCompleta(t *testing.T) {
	env := buildTestApp(t, true)
	sub := env.hub.Subscribe()

	created := env.createProduct(t, `{"title":"A","code":"X"}`)

	select {
	case raw := <-sub.C():
		msg := decode(t, raw)
		assert.Equal(t, "updateProducts", msg["event"])
		payload, ok := msg["payload"].([]any)
		require.True(t, ok)
		require.Len(t, payload, 1)
		assert.Equal(t, created["id"], payload[0].(map[string]any)["id"])
	case <-time.After(time.Second):
		t.Fatal("no llegó el evento updateProducts")
	}

	resp, _ := env.do(t, http.MethodDelete, "/api/products/nope", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	select {
	case raw := <-sub.C():
		t.Fatalf("un 404 no debe difundir: %s", raw)
	default:
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Carritos
// ──────────────────────────────────────────────────────────────────────────────

func TestCarts_AgregarDosVecesIncrementaCantidad(t *testing.T) {
	env := buildTestApp(t, true)

	resp, raw := env.do(t, http.MethodPost, "/api/carts", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cart := decode(t, raw)
	assert.Equal(t, []any{}, cart["products"])
	cid := cart["id"].(string)

	for i := 0; i < 2; i++ {
		resp, raw = env.do(t, http.MethodPost, "/api/carts/"+cid+"/product/p1", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	}

	resp, raw = env.do(t, http.MethodGet, "/api/carts/"+cid, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode(t, raw)
	assert.Equal(t, []any{map[string]any{"id": "p1", "quantity": float64(2)}}, got["products"])
}

func TestCarts_CarritoInexistente(t *testing.T) {
	env := buildTestApp(t, true)

	resp, raw := env.do(t, http.MethodPost, "/api/carts/nope/product/p1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Carrito no encontrado", string(raw))

	resp, _ = env.do(t, http.MethodGet, "/api/carts/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	data, err := env.store.Read(context.Background(), cartsResource)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data), "no se debe crear ningún carrito")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas, realtime, exportaciones y operación
// ──────────────────────────────────────────────────────────────────────────────

func TestViews_Render(t *testing.T) {
	env := buildTestApp(t, true)
	env.createProduct(t, `{"title":"Lámpara","code":"L-1","price":99.5}`)

	resp, raw := env.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(raw), "Lámpara")
	assert.Contains(t, string(raw), "99.5")

	resp, raw = env.do(t, http.MethodGet, "/realtimeproducts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "Lámpara")
	assert.Contains(t, string(raw), "/ws")
	assert.Contains(t, string(raw), "updateProducts")
}

func TestWebsocket_SinUpgradeResponde426(t *testing.T) {
	env := buildTestApp(t, true)

	resp, raw := env.do(t, http.MethodGet, "/ws", "")
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
	assert.Equal(t, "UPGRADE_REQUIRED", decode(t, raw)["code"])
}

func TestCatalog_Exportaciones(t *testing.T) {
	env := buildTestApp(t, true)
	env.createProduct(t, `{"title":"Silla","code":"S-9","price":1500}`)

	resp, raw := env.do(t, http.MethodGet, "/api/catalog/feed.xml", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
	assert.Contains(t, string(raw), "S-9")

	resp, raw = env.do(t, http.MethodGet, "/api/catalog/pdf", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"), "debe ser un PDF")
}

func TestOps_HealthMetricsDocs(t *testing.T) {
	env := buildTestApp(t, true)
	env.do(t, http.MethodGet, "/api/products", "")

	resp, raw := env.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode(t, raw)["status"])

	resp, raw = env.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "catalog_store_operations_total")

	resp, raw = env.do(t, http.MethodGet, "/docs/doc.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "/api/products")
}
