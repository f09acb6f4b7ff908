package analytics

import (
	"context"

	"github.com/jhoicas/precios-api/internal/application/dto"
)

// SpendReportPDFGenerator genera la representación PDF del reporte de gasto.
type SpendReportPDFGenerator interface {
	GenerateSpendPDF(ctx context.Context, report *dto.SpendReportResponse) ([]byte, error)
}
