package romaneio_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/romaneio"
)

var createdAt = time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.FixedZone("BRT", -3*3600))

func sampleManifest() *entity.Manifest {
	return entity.NewManifest(
		"6f1c1d9e-8a53-4a0e-9d7e-3d1f0c1e2a11",
		"Fazenda Santa Rita", "R-0042",
		[]string{"P01", "A02"},
		decimal.RequireFromString("25000.5"),
		"Packing house Juazeiro",
		"Fiscal Ana",
		createdAt,
	)
}

func TestPayload_RoundTripManifest(t *testing.T) {
	m := sampleManifest()

	text, err := romaneio.EncodePayload(m)
	require.NoError(t, err)

	got, err := romaneio.DecodePayload(text)
	require.NoError(t, err)
	require.Equal(t, entity.ManifestKindFiscal, got.RecordKind())

	decoded, ok := got.(*entity.Manifest)
	require.True(t, ok, "debe decodificar como romaneio fiscal")
	if diff := cmp.Diff(m, decoded); diff != "" {
		t.Fatalf("round-trip distinto (-want +got):\n%s", diff)
	}
}

func TestPayload_RoundTripCompleted(t *testing.T) {
	c := entity.Promote(sampleManifest(), entity.Transport{
		TransporterName:  "José Motorista",
		TransporterDocID: "123.456.789-00",
		VehiclePlate:     "ABC-1234",
		CarrierName:      "Transportes Vale",
	}, createdAt.Add(2*time.Hour))
	c.Status = entity.ManifestStatusCompleted

	text, err := romaneio.EncodePayload(c)
	require.NoError(t, err)
	assert.Contains(t, text, `"kind":"completed"`)
	assert.Contains(t, text, `"transporterName":"José Motorista"`)

	got, err := romaneio.DecodePayload(text)
	require.NoError(t, err)
	decoded, ok := got.(*entity.CompletedManifest)
	require.True(t, ok, "debe decodificar como romaneio completo")
	if diff := cmp.Diff(c, decoded); diff != "" {
		t.Fatalf("round-trip distinto (-want +got):\n%s", diff)
	}
}

func TestPayload_LegacyWithoutKind(t *testing.T) {
	fiscal := `{"id":"r1","site":"S1","manifestNumber":"N1","plots":["P1"],"declaredQuantity":1000,"destination":"D1","createdAt":"2026-01-02T10:00:00.000Z"}`
	got, err := romaneio.DecodePayload(fiscal)
	require.NoError(t, err)
	assert.Equal(t, entity.ManifestKindFiscal, got.RecordKind())
	assert.True(t, got.Header().DeclaredQuantity.Equal(decimal.NewFromInt(1000)))

	completed := `{"id":"r1","site":"S1","manifestNumber":"N1","plots":["P1"],"declaredQuantity":1000,"destination":"D1","transporterName":"Zé"}`
	got, err = romaneio.DecodePayload(completed)
	require.NoError(t, err)
	require.Equal(t, entity.ManifestKindCompleted, got.RecordKind())
	assert.Equal(t, entity.ManifestStatusPending, got.(*entity.CompletedManifest).Status)

	blankTransporter := `{"id":"r1","site":"S1","manifestNumber":"N1","transporterName":"  "}`
	got, err = romaneio.DecodePayload(blankTransporter)
	require.NoError(t, err)
	assert.Equal(t, entity.ManifestKindFiscal, got.RecordKind())
}

func TestPayload_DecodeErrors(t *testing.T) {
	cases := map[string]string{
		"vacío":              "   ",
		"no es JSON":         "ROMANEIO:42",
		"sin id":             `{"site":"S1","manifestNumber":"N1"}`,
		"site vacío":         `{"id":"x","site":"","manifestNumber":"N1"}`,
		"sin número":         `{"id":"x","site":"S1"}`,
		"tipo desconocido":   `{"kind":"draft","id":"x","site":"S1","manifestNumber":"N1"}`,
		"estado desconocido": `{"kind":"completed","id":"x","site":"S1","manifestNumber":"N1","transporterName":"T","status":"lost"}`,
		"cantidad inválida":  `{"id":"x","site":"S1","manifestNumber":"N1","declaredQuantity":"mucho"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := romaneio.DecodePayload(payload)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDecode), "debe ser DecodeError: %v", err)
			var de *domain.DecodeError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestPayload_EncodeRejectsNil(t *testing.T) {
	var m *entity.Manifest
	_, err := romaneio.EncodePayload(m)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
