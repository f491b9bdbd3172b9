package manifest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Romaneio-api/internal/application/ports"
	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/romaneio"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/localstore"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeEncoder struct{ last string }

func (f *fakeEncoder) Encode(_ context.Context, payload string) ([]byte, error) {
	f.last = payload
	return []byte("PNG:" + payload), nil
}

// fakeReader interpreta la "imagen" como el texto del código; "" = ilegible.
type fakeReader struct{ err error }

func (f fakeReader) Read(_ context.Context, image []byte) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	if string(image) == "ilegible" {
		return "", false, nil
	}
	return string(image), true, nil
}

type fakeSlips struct{}

func (fakeSlips) GenerateSlip(_ context.Context, rec entity.ManifestRecord, payload string) ([]byte, error) {
	return []byte("%PDF " + rec.Header().ID), nil
}

type fakeWaybills struct{}

func (fakeWaybills) Export(_ context.Context, rec entity.ManifestRecord) (*ports.Waybill, error) {
	return &ports.Waybill{XML: []byte("<romaneio/>"), Fingerprint: "abc"}, nil
}

var fixedNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, reader ports.CodeReader) (*UseCase, *fakeEncoder) {
	t.Helper()
	backend, err := localstore.OpenBadger("", zerolog.Nop())
	require.NoError(t, err)
	store := localstore.New(backend, zerolog.Nop())
	t.Cleanup(func() { _ = store.Close() })

	enc := &fakeEncoder{}
	if reader == nil {
		reader = fakeReader{}
	}
	uc := NewUseCase(localstore.NewManifestRepository(store), enc, reader, fakeSlips{}, fakeWaybills{}, zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }
	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("m%d", n)
	}
	return uc, enc
}

func validCreate() CreateInput {
	return CreateInput{
		Site:             "S1",
		Number:           "N1",
		Plots:            []string{"P1"},
		DeclaredQuantity: decimal.NewFromInt(25000),
		Destination:      "D1",
	}
}

func validTransport() CompleteInput {
	return CompleteInput{
		TransporterName:  "José Motorista",
		TransporterDocID: "12345678901",
		VehiclePlate:     "abc 1234",
		CarrierName:      "Transportes Rápidos",
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	in := validCreate()
	in.Plots = []string{" P1 ", "P2"}
	in.InspectorName = "Fiscal Ana"

	m, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, entity.ManifestKindFiscal, m.Kind)
	assert.Equal(t, []string{"P1", "P2"}, m.Plots)
	assert.Equal(t, fixedNow, m.CreatedAt)

	rec, err := uc.LookupByID(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, entity.ManifestKindFiscal, rec.RecordKind())
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(in *CreateInput)
		field string
	}{
		{"sin parcelas", func(in *CreateInput) { in.Plots = nil }, "plots"},
		{"parcela vacía", func(in *CreateInput) { in.Plots = []string{"P1", " "} }, "plots"},
		{"parcela repetida", func(in *CreateInput) { in.Plots = []string{"P1", "P1"} }, "plots"},
		{"cantidad cero", func(in *CreateInput) { in.DeclaredQuantity = decimal.Zero }, "declaredQuantity"},
		{"cantidad negativa", func(in *CreateInput) { in.DeclaredQuantity = decimal.NewFromInt(-1) }, "declaredQuantity"},
		{"sin número", func(in *CreateInput) { in.Number = "" }, "manifestNumber"},
		{"sin destino", func(in *CreateInput) { in.Destination = "" }, "destination"},
		{"sin finca", func(in *CreateInput) { in.Site = "" }, "site"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t, nil)
			in := validCreate()
			tt.edit(&in)

			_, err := uc.Create(context.Background(), in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)

			st, err := uc.List(context.Background(), "")
			require.NoError(t, err)
			assert.Empty(t, st.Fiscal)
		})
	}
}

// ── Complete / Dispatch / Deliver ─────────────────────────────────────────────

func TestComplete_ConsumesFiscal(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	m, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	c, err := uc.Complete(ctx, m, validTransport())
	require.NoError(t, err)
	assert.Equal(t, entity.ManifestStatusPending, c.Status)
	assert.Equal(t, entity.ManifestKindCompleted, c.Kind)
	assert.Equal(t, "ABC-1234", c.VehiclePlate)
	assert.Equal(t, "123.456.789-01", c.TransporterDocID)
	assert.Equal(t, fixedNow, c.ArrivedAt)
	assert.True(t, m.DeclaredQuantity.Equal(c.DeclaredQuantity))

	fiscal, err := uc.List(ctx, StageFiscal)
	require.NoError(t, err)
	assert.Empty(t, fiscal.Fiscal)

	completed, err := uc.List(ctx, StageCompleted)
	require.NoError(t, err)
	require.Len(t, completed.Completed, 1)
	assert.Equal(t, entity.ManifestStatusPending, completed.Completed[0].Status)

	rec, err := uc.LookupByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ManifestKindCompleted, rec.RecordKind())
}

func TestComplete_Validation(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	m, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	edits := map[string]func(in *CompleteInput){
		"transporterName":  func(in *CompleteInput) { in.TransporterName = " " },
		"transporterDocId": func(in *CompleteInput) { in.TransporterDocID = "" },
		"vehiclePlate":     func(in *CompleteInput) { in.VehiclePlate = "--" },
		"carrierName":      func(in *CompleteInput) { in.CarrierName = "" },
	}
	for field, edit := range edits {
		t.Run(field, func(t *testing.T) {
			in := validTransport()
			edit(&in)
			_, err := uc.Complete(ctx, m, in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, field, ve.Field)
		})
	}

	_, err = uc.Complete(ctx, nil, validTransport())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nada cambió: sigue en la etapa fiscal.
	st, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, st.Fiscal, 1)
	assert.Empty(t, st.Completed)
}

func TestComplete_TwiceRejected(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	m, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)
	_, err = uc.Complete(ctx, m, validTransport())
	require.NoError(t, err)

	_, err = uc.Complete(ctx, m, validTransport())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComplete_ScannedFromOtherDevice(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	m := entity.NewManifest("remoto", "S1", "N7", []string{"P1"}, decimal.NewFromInt(500), "D1", "", fixedNow)

	c, err := uc.Complete(context.Background(), m, validTransport())
	require.NoError(t, err)
	assert.Equal(t, "remoto", c.ID)
}

func TestComplete_RejectsIncompleteScannedManifest(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	cases := map[string]*entity.Manifest{
		"declaredQuantity": entity.NewManifest("r1", "S1", "N7", []string{"P1"}, decimal.Zero, "D1", "", fixedNow),
		"plots":            entity.NewManifest("r2", "S1", "N7", nil, decimal.NewFromInt(500), "D1", "", fixedNow),
		"plots vacía":      entity.NewManifest("r3", "S1", "N7", []string{" "}, decimal.NewFromInt(500), "D1", "", fixedNow),
		"site":             entity.NewManifest("r4", "", "N7", []string{"P1"}, decimal.NewFromInt(500), "D1", "", fixedNow),
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Complete(ctx, m, validTransport())
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			_, err = uc.LookupByID(ctx, m.ID)
			assert.ErrorIs(t, err, domain.ErrNotFound, "no se promueve")
		})
	}
}

func TestDispatch(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	m, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, err = uc.Dispatch(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fiscal sin transporte")

	_, err = uc.Complete(ctx, m, validTransport())
	require.NoError(t, err)

	c, err := uc.Dispatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ManifestStatusCompleted, c.Status)

	_, err = uc.Dispatch(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no retrocede ni repite")

	_, err = uc.Dispatch(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkDelivered_PrefersLocalCopy(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	m, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)
	local, err := uc.Complete(ctx, m, validTransport())
	require.NoError(t, err)

	scanned := *local
	scanned.CarrierName = "otro"
	got, err := uc.MarkDelivered(ctx, &scanned)
	require.NoError(t, err)
	assert.Equal(t, entity.ManifestStatusDelivered, got.Status)
	assert.Equal(t, local.CarrierName, got.CarrierName)
}

// ── Código ────────────────────────────────────────────────────────────────────

func TestEmitAndScan_RoundTrip(t *testing.T) {
	uc, enc := newTestUseCase(t, nil)
	ctx := context.Background()
	m, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	code, err := uc.EmitByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, code.Payload, enc.last)
	assert.Equal(t, "PNG:"+code.Payload, string(code.PNG))

	rec, err := uc.ScanImage(ctx, []byte(code.Payload))
	require.NoError(t, err)
	got, ok := rec.(*entity.Manifest)
	require.True(t, ok)
	assert.Equal(t, m.ID, got.ID)
	assert.True(t, m.DeclaredQuantity.Equal(got.DeclaredQuantity))
}

func TestScan_ReturnsLocalStage(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	m, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)
	oldPayload, err := romaneio.EncodePayload(m)
	require.NoError(t, err)
	_, err = uc.Complete(ctx, m, validTransport())
	require.NoError(t, err)

	// El código fiscal viejo resuelve a la etapa completa guardada.
	for i := 0; i < 2; i++ {
		rec, err := uc.Scan(ctx, oldPayload)
		require.NoError(t, err)
		assert.Equal(t, entity.ManifestKindCompleted, rec.RecordKind())
	}
}

func TestScan_UnknownIDReturnsDecoded(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	rec, err := uc.Scan(context.Background(), `{"kind":"fiscal","id":"x","site":"S1","manifestNumber":"N1","plots":["P1"],"declaredQuantity":"10","destination":"D"}`)
	require.NoError(t, err)
	assert.Equal(t, "x", rec.Header().ID)
}

func TestScanImage_Errors(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()

	_, err := uc.ScanImage(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrDecode)

	_, err = uc.ScanImage(ctx, []byte("ilegible"))
	assert.ErrorIs(t, err, domain.ErrDecode)

	_, err = uc.ScanImage(ctx, []byte(`{"id":""}`))
	assert.ErrorIs(t, err, domain.ErrDecode)

	broken, _ := newTestUseCase(t, fakeReader{err: errors.New("cámara")})
	_, err = broken.ScanImage(ctx, []byte("x"))
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestLookupByID_NotFound(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	_, err := uc.LookupByID(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.EmitByID(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_UnknownStage(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	_, err := uc.List(context.Background(), "borrador")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Documentos ────────────────────────────────────────────────────────────────

func TestSlipAndWaybill_Filenames(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := context.Background()
	in := validCreate()
	in.Number = "RM 2025/001"
	m, err := uc.Create(ctx, in)
	require.NoError(t, err)

	pdf, name, err := uc.Slip(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "romaneio_RM_2025_001.pdf", name)
	assert.Equal(t, "%PDF m1", string(pdf))

	wb, name, err := uc.Waybill(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "romaneio_RM_2025_001.xml", name)
	assert.Equal(t, "abc", wb.Fingerprint)
}
