package order

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/store"
)

func newTestApp(t *testing.T, locator *store.Locator) *fiber.App {
	t.Helper()
	ctrl := NewController(newTestUseCase(t, locator), zap.NewNop(), tracenoop.NewTracerProvider().Tracer("test"))
	app := fiber.New()
	app.Get("/latest-order", ctrl.Latest)
	return app
}

func getLatestOrder(t *testing.T, app *fiber.App) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/latest-order", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode body %s: %v", body, err)
	}
	return resp.StatusCode, payload
}

func TestLatestOrderNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	app := newTestApp(t, store.NewLocator(store.Fixed(missing)))

	status, payload := getLatestOrder(t, app)
	if status != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", status)
	}
	if payload["ok"] != false {
		t.Fatalf("expected ok:false, got %v", payload["ok"])
	}
	if payload["message"] != "no orders.json found" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	candidates, ok := payload["candidates"].([]any)
	if !ok || len(candidates) != 1 {
		t.Fatalf("expected the probed candidate list, got %v", payload["candidates"])
	}
	found, ok := payload["found"].([]any)
	if !ok {
		t.Fatalf("found must serialize as an array, got %T", payload["found"])
	}
	if len(found) != 0 {
		t.Fatalf("expected nothing found, got %v", found)
	}
}

func TestLatestOrderParseError(t *testing.T) {
	path := writeStore(t, `{not json`)
	app := newTestApp(t, store.NewLocator(store.Fixed(path)))

	status, payload := getLatestOrder(t, app)
	if status != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", status)
	}
	if payload["ok"] != false {
		t.Fatalf("expected ok:false, got %v", payload["ok"])
	}
	if payload["message"] != "parse error" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if payload["file"] != path {
		t.Fatalf("unexpected file: %v", payload["file"])
	}
	if payload["error"] == "" || payload["error"] == nil {
		t.Fatal("expected the parser detail in the body")
	}
}

func TestLatestOrderEmptyStore(t *testing.T) {
	path := writeStore(t, `[]`)
	app := newTestApp(t, store.NewLocator(store.Fixed(path)))

	status, payload := getLatestOrder(t, app)
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	if payload["ok"] != true {
		t.Fatalf("expected ok:true, got %v", payload["ok"])
	}
	order, present := payload["order"]
	if !present {
		t.Fatal("order key must be present even when the store is empty")
	}
	if order != nil {
		t.Fatalf("expected order:null, got %v", order)
	}
}

func TestLatestOrderReturnsLast(t *testing.T) {
	path := writeStore(t, `[{"name":"A"},{"name":"B"}]`)
	app := newTestApp(t, store.NewLocator(store.Fixed(path)))

	status, payload := getLatestOrder(t, app)
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	if payload["file"] != path {
		t.Fatalf("unexpected file: %v", payload["file"])
	}
	order, ok := payload["order"].(map[string]any)
	if !ok {
		t.Fatalf("expected an order object, got %v", payload["order"])
	}
	if order["name"] != "B" {
		t.Fatalf("expected the last record, got %v", order)
	}
}

func TestLatestOrderPreservesUnknownFields(t *testing.T) {
	path := writeStore(t, `[{"name":"B","loyalty_tier":3}]`)
	app := newTestApp(t, store.NewLocator(store.Fixed(path)))

	_, payload := getLatestOrder(t, app)
	order, ok := payload["order"].(map[string]any)
	if !ok {
		t.Fatalf("expected an order object, got %v", payload["order"])
	}
	if order["loyalty_tier"] != float64(3) {
		t.Fatalf("unknown field was dropped: %v", order)
	}
}

func TestLatestOrderNonArrayStore(t *testing.T) {
	path := writeStore(t, `{"orders":[]}`)
	app := newTestApp(t, store.NewLocator(store.Fixed(path)))

	status, payload := getLatestOrder(t, app)
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	if payload["ok"] != true || payload["order"] != nil {
		t.Fatalf("wrong-shape store must serve ok with a null order, got %v", payload)
	}
}

func TestLatestOrderRepeatedCallsIdentical(t *testing.T) {
	path := writeStore(t, `[{"name":"A"},{"name":"B"}]`)
	app := newTestApp(t, store.NewLocator(store.Fixed(path)))

	status1, payload1 := getLatestOrder(t, app)
	status2, payload2 := getLatestOrder(t, app)
	if status1 != status2 {
		t.Fatalf("statuses differ: %d vs %d", status1, status2)
	}
	if !reflect.DeepEqual(payload1, payload2) {
		t.Fatalf("unchanged store must serve identical bodies: %v vs %v", payload1, payload2)
	}
}
