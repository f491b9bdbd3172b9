package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Romaneio-api/internal/application/ledger"
	"github.com/jhoicas/Romaneio-api/internal/application/manifest"
	"github.com/jhoicas/Romaneio-api/internal/application/reconciliation"
	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/romaneio"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/seed"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/waybill"
	apphttp "github.com/jhoicas/Romaneio-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre badger en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	backend, err := localstore.OpenBadger("", zerolog.Nop())
	require.NoError(t, err)
	store := localstore.New(backend, zerolog.Nop())
	t.Cleanup(func() { _ = store.Close() })

	manifestRepo := localstore.NewManifestRepository(store)
	ledgerUC := ledger.NewUseCase(localstore.NewEntryRepository(store), seed.Default(), ledger.DefaultKgPerBox, zerolog.Nop())
	manifestUC := manifest.NewUseCase(
		manifestRepo,
		qrcode.NewEncoder(0),
		qrcode.PassthroughReader{},
		pdf.NewMarotoSlipGenerator(),
		waybill.NewExporter(),
		zerolog.Nop(),
	)
	scaleUC := reconciliation.NewUseCase(localstore.NewScaleReadingRepository(store), manifestRepo, manifestUC, romaneio.DefaultTolerancePct, zerolog.Nop())

	app := apphttp.NewApp("romaneio-test", zerolog.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		Ledger:      ledgerUC,
		Manifests:   manifestUC,
		Scale:       scaleUC,
		ServiceName: "romaneio-test",
		StoreDriver: "badger",
	})
	return app
}

// do ejecuta una petición JSON y devuelve status y cuerpo crudo.
func do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), string(raw))
	return m
}

func createManifest(t *testing.T, app *fiber.App, declared int) map[string]any {
	t.Helper()
	status, raw := do(t, app, http.MethodPost, "/api/manifests", map[string]any{
		"site":             "Fazenda Santa Rita",
		"manifestNumber":   "R-001",
		"plots":            []string{"T1", "T2"},
		"declaredQuantity": declared,
		"destination":      "Usina Central",
	}, apphttp.HeaderOperator, "Fiscal Souza")
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode(t, raw)
}

func completeManifest(t *testing.T, app *fiber.App, payload string) map[string]any {
	t.Helper()
	status, raw := do(t, app, http.MethodPost, "/api/manifests/complete", map[string]any{
		"payload":          payload,
		"transporterName":  "Carlos Motorista",
		"transporterDocId": "12345678901",
		"vehiclePlate":     "abc-1d23",
		"carrierName":      "Transportes Sul",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode(t, raw)
}

func payloadOf(t *testing.T, app *fiber.App, id string) string {
	t.Helper()
	status, raw := do(t, app, http.MethodGet, "/api/manifests/"+id+"/payload", nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	return decode(t, raw)["payload"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	status, raw := do(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	body := decode(t, raw)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "badger", body["store"])
}

func TestProduction_RecordAndConsolidate(t *testing.T) {
	app := buildTestApp(t)

	for _, e := range []map[string]any{
		{"workerId": "1", "site": "Fazenda Santa Rita", "plot": "T1", "date": "2024-03-01", "boxCount": 12},
		{"workerId": "2", "site": "Fazenda Santa Rita", "plot": "T1", "date": "2024-03-01", "boxCount": 8},
		{"workerId": "1", "site": "Fazenda Santa Rita", "plot": "T1", "date": "2024-03-01", "boxCount": 5},
	} {
		status, raw := do(t, app, http.MethodPost, "/api/production/entries", e, apphttp.HeaderOperator, "Fiscal Souza")
		require.Equal(t, http.StatusCreated, status, string(raw))
		body := decode(t, raw)
		assert.Equal(t, "Fiscal Souza", body["createdBy"])
		assert.NotEmpty(t, body["workerName"])
	}

	status, raw := do(t, app, http.MethodGet, "/api/production/consolidation?site=Fazenda%20Santa%20Rita&plot=T1&date=2024-03-01", nil)
	require.Equal(t, http.StatusOK, status)
	body := decode(t, raw)
	assert.EqualValues(t, 25, body["totalBoxes"])
	workers := body["workers"].([]any)
	require.Len(t, workers, 2)
	assert.Equal(t, "1", workers[0].(map[string]any)["workerId"])
	assert.EqualValues(t, 17, workers[0].(map[string]any)["boxes"])

	status, raw = do(t, app, http.MethodGet, "/api/production/estimate?site=Fazenda%20Santa%20Rita&date=2024-03-01&plots=T1,T2", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 25, decode(t, raw)["boxes"])
}

func TestProduction_ValidationErrors(t *testing.T) {
	app := buildTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/production/entries", map[string]any{
		"workerId": "1", "site": "Fazenda Santa Rita", "plot": "T1", "date": "2024-03-01", "boxCount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	body := decode(t, raw)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "boxCount", body["field"])

	status, _ = do(t, app, http.MethodGet, "/api/production/consolidation?site=X", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodGet, "/api/production/reports/workers/1?start=01/03/2024", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	req := httptest.NewRequest(http.MethodPost, "/api/production/entries", strings.NewReader("{no json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWorkers_FilterBySite(t *testing.T) {
	app := buildTestApp(t)
	status, raw := do(t, app, http.MethodGet, "/api/workers?site=Fazenda%20Boa%20Vista", nil)
	require.Equal(t, http.StatusOK, status)
	items := decode(t, raw)["items"].([]any)
	assert.Len(t, items, 2)
}

func TestManifest_FullFlowOverHTTP(t *testing.T) {
	app := buildTestApp(t)

	m := createManifest(t, app, 25000)
	id := m["id"].(string)
	assert.Equal(t, "fiscal", m["kind"])
	assert.Equal(t, "Fiscal Souza", m["inspectorName"])

	// El transportista escanea el QR del fiscal.
	c := completeManifest(t, app, payloadOf(t, app, id))
	assert.Equal(t, id, c["id"])
	assert.Equal(t, "completed", c["kind"])
	assert.Equal(t, "pending", c["status"])
	assert.Equal(t, "ABC1D23", c["vehiclePlate"])

	status, raw := do(t, app, http.MethodGet, "/api/manifests", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode(t, raw)["fiscalManifests"])
	assert.Len(t, decode(t, raw)["completedManifests"], 1)

	status, raw = do(t, app, http.MethodPost, "/api/manifests/"+id+"/dispatch", nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "completed", decode(t, raw)["status"])

	// La báscula escanea el QR del romaneio completo.
	status, raw = do(t, app, http.MethodPost, "/api/scale/weighings", map[string]any{
		"payload":     payloadOf(t, app, id),
		"grossWeight": 26500,
		"tareWeight":  1500,
	}, apphttp.HeaderOperator, "Operador Balança")
	require.Equal(t, http.StatusCreated, status, string(raw))
	res := decode(t, raw)
	reading := res["reading"].(map[string]any)
	assert.Equal(t, "25000", reading["netWeight"])
	assert.Equal(t, "valid", reading["status"])
	assert.Equal(t, "Operador Balança", reading["operatorName"])
	assert.Equal(t, "delivered", res["manifest"].(map[string]any)["status"])

	status, raw = do(t, app, http.MethodGet, "/api/scale/weighings/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, decode(t, raw)["manifestId"])

	// Un segundo pesaje se rechaza.
	status, _ = do(t, app, http.MethodPost, "/api/scale/weighings", map[string]any{
		"manifestId": id, "grossWeight": 30000, "tareWeight": 1500,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestManifest_Documents(t *testing.T) {
	app := buildTestApp(t)
	id := createManifest(t, app, 25000)["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/manifests/"+id+"/qr", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	req = httptest.NewRequest(http.MethodGet, "/api/manifests/"+id+"/slip", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "romaneio_R-001.pdf")

	req = httptest.NewRequest(http.MethodGet, "/api/manifests/"+id+"/waybill", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Header.Get(apphttp.HeaderWaybillFingerprint), 96)
}

func TestManifest_ErrorMapping(t *testing.T) {
	app := buildTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/manifests/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode(t, raw)["code"])

	status, raw = do(t, app, http.MethodPost, "/api/manifests/scan", map[string]any{"payload": "{\"id\":\"x\"}"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "DECODE", decode(t, raw)["code"])

	status, raw = do(t, app, http.MethodGet, "/api/manifests?stage=otro", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode(t, raw)["code"])

	status, raw = do(t, app, http.MethodPost, "/api/manifests/complete", map[string]any{"transporterName": "T"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "payload", decode(t, raw)["field"])

	status, raw = do(t, app, http.MethodGet, "/api/nada", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "HTTP_404", decode(t, raw)["code"])
}

func TestErrorHandler_Conflict(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Post("/x", func(c *fiber.Ctx) error {
		return fmt.Errorf("guardar romaneio: %w", domain.ErrConflict)
	})

	status, raw := do(t, app, http.MethodPost, "/x", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode(t, raw)["code"])
}

func TestManifest_CompleteRejectsScannedWithoutQuantity(t *testing.T) {
	app := buildTestApp(t)
	payload := `{"kind":"fiscal","id":"remoto","site":"S1","manifestNumber":"N1","plots":["P1"],"declaredQuantity":"0","destination":"D"}`

	status, raw := do(t, app, http.MethodPost, "/api/manifests/complete", map[string]any{
		"payload":          payload,
		"transporterName":  "Carlos Motorista",
		"transporterDocId": "12345678901",
		"vehiclePlate":     "abc-1d23",
		"carrierName":      "Transportes Sul",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "declaredQuantity", decode(t, raw)["field"])

	status, _ = do(t, app, http.MethodGet, "/api/manifests/remoto", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestScale_Rules(t *testing.T) {
	app := buildTestApp(t)
	id := createManifest(t, app, 25000)["id"].(string)

	// Falta la tara.
	status, raw := do(t, app, http.MethodPost, "/api/scale/weighings", map[string]any{"manifestId": id, "grossWeight": 100})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "tareWeight", decode(t, raw)["field"])

	// Un romaneio fiscal no se pesa: ni por id ni por QR.
	status, _ = do(t, app, http.MethodPost, "/api/scale/weighings", map[string]any{"manifestId": id, "grossWeight": 26500, "tareWeight": 1500})
	assert.Equal(t, http.StatusBadRequest, status)
	status, raw = do(t, app, http.MethodPost, "/api/scale/weighings", map[string]any{
		"payload": payloadOf(t, app, id), "grossWeight": 26500, "tareWeight": 1500,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "payload", decode(t, raw)["field"])

	status, _ = do(t, app, http.MethodPost, "/api/scale/weighings", map[string]any{"manifestId": "desconocido", "grossWeight": 26500, "tareWeight": 1500})
	assert.Equal(t, http.StatusNotFound, status)

	status, raw = do(t, app, http.MethodGet, "/api/scale/weighings", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(raw))
}
