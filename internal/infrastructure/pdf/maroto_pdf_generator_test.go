package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/precios-api/internal/application/dto"
)

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "$0,00",
		"4.5":       "$4,50",
		"25000":     "$25.000,00",
		"1234567.5": "$1.234.567,50",
		"-1200":     "-$1.200,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, money(decimal.RequireFromString(in)), in)
	}
}

func TestPercentYTypeLabel(t *testing.T) {
	assert.Equal(t, "33,33%", percent(decimal.RequireFromString("33.333")))
	assert.Equal(t, "Alimentos", typeLabel("alimento"))
	assert.Equal(t, "desconocido", typeLabel("desconocido"))
}

func TestGenerateSpendPDF(t *testing.T) {
	g := NewMarotoPDFGenerator("")
	report := &dto.SpendReportResponse{
		Selection:  "all",
		GrandTotal: decimal.NewFromInt(100),
		ByType: []dto.TypeSpendDTO{
			{Type: "alimento", Total: decimal.NewFromInt(30), Percentage: decimal.NewFromInt(30)},
			{Type: "limpieza", Total: decimal.NewFromInt(50), Percentage: decimal.NewFromInt(50)},
			{Type: "otros", Total: decimal.NewFromInt(20), Percentage: decimal.NewFromInt(20)},
		},
		Categories: []dto.CategorySpendDTO{
			{Name: "Detergentes", Type: "limpieza", Total: decimal.NewFromInt(50), ProductCount: 1, Percentage: decimal.NewFromInt(50)},
			{Name: "Lácteos", Type: "alimento", Total: decimal.NewFromInt(30), ProductCount: 1, Percentage: decimal.NewFromInt(30)},
		},
		GeneratedAt: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}

	b, err := g.GenerateSpendPDF(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe ser un PDF")

	empty, err := g.GenerateSpendPDF(context.Background(), &dto.SpendReportResponse{Selection: "otros"})
	require.NoError(t, err)
	assert.NotEmpty(t, empty)

	_, err = g.GenerateSpendPDF(context.Background(), nil)
	assert.Error(t, err)
}
