package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendReportRequest parámetros de GET /api/analytics/spend.
type SpendReportRequest struct {
	Type string `query:"type"` // alimento | limpieza | otros | all (default)
}

// CategorySpendDTO gasto por categoría con su participación en el total general.
type CategorySpendDTO struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Total        decimal.Decimal `json:"total"`
	ProductCount int             `json:"product_count"`
	Percentage   decimal.Decimal `json:"percentage"` // Total / GrandTotal * 100
}

// TypeSpendDTO gasto de un tipo con el desglose por categoría.
type TypeSpendDTO struct {
	Type           string                     `json:"type"`
	Total          decimal.Decimal            `json:"total"`
	Percentage     decimal.Decimal            `json:"percentage"`
	CategoryTotals map[string]decimal.Decimal `json:"category_totals"`
}

// SpendReportResponse reporte de gasto por categoría y tipo (solo productos activos).
type SpendReportResponse struct {
	Selection   string             `json:"selection"`
	GrandTotal  decimal.Decimal    `json:"grand_total"`
	ByType      []TypeSpendDTO     `json:"by_type"`
	Categories  []CategorySpendDTO `json:"categories"` // filtradas por Selection, total desc
	GeneratedAt time.Time          `json:"generated_at"`
	// Warnings productos ilegibles que no entraron en los totales.
	Warnings []DocumentWarningDTO `json:"warnings,omitempty"`
}

// HistoryRequest parámetros de GET /api/products/:id/history.
type HistoryRequest struct {
	Locale string `query:"locale"` // es | en; vacío = Accept-Language o REPORT_LOCALE
}

// MonthlyPriceDTO precio representativo de un mes.
type MonthlyPriceDTO struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Label string          `json:"label"` // "enero de 2024" | "January 2024"
	Price decimal.Decimal `json:"price"`
	Date  time.Time       `json:"date"`
}

// MonthlyHistoryResponse serie mensual del historial de precios de un producto.
type MonthlyHistoryResponse struct {
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name"`
	Locale      string            `json:"locale"`
	Months      []MonthlyPriceDTO `json:"months"`
	Warnings    []WarningDTO      `json:"warnings,omitempty"`
}

// CatalogResponse instantánea de productos y categorías con el filtro aplicado.
type CatalogResponse struct {
	Generation uint64               `json:"generation"`
	Products   []ProductResponse    `json:"products"`
	Categories []CategoryResponse   `json:"categories"`
	Groups     []string             `json:"groups,omitempty"` // grupos del tipo filtrado
	Total      int                  `json:"total"`
	Warnings   []DocumentWarningDTO `json:"warnings,omitempty"`
}
