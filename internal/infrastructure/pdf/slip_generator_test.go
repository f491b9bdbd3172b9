package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "950", formatKg("950"))
	assert.Equal(t, "25.000", formatKg("25000"))
	assert.Equal(t, "1.000.000", formatKg("1000000"))
	assert.Equal(t, "-1.500", formatKg("-1500"))
}

func TestGenerateSlip(t *testing.T) {
	m := entity.NewManifest("m1", "Fazenda Santa Rita", "RM-001", []string{"P01", "P02"},
		decimal.NewFromInt(25000), "CEASA", "Ana", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	c := entity.Promote(m, entity.Transport{
		TransporterName: "José", TransporterDocID: "123.456.789-01", VehiclePlate: "ABC-1234", CarrierName: "Rápido",
	}, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	g := NewMarotoSlipGenerator()
	for _, rec := range []entity.ManifestRecord{m, c} {
		doc, err := g.GenerateSlip(context.Background(), rec, `{"id":"m1"}`)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	}

	_, err := g.GenerateSlip(context.Background(), nil, "")
	assert.Error(t, err)
}
