package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/precios-api/internal/application/analytics"
	"github.com/jhoicas/precios-api/internal/application/dto"
)

// AnalyticsHandler maneja los reportes de gasto por categoría.
type AnalyticsHandler struct {
	uc *analytics.SpendUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.SpendUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Spend godoc
// @Summary      Gasto por categoría y tipo
// @Description  Suma el precio actual de los productos activos. Los porcentajes
//               se calculan sobre el total general y suman 100 cuando hay gasto.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "alimento | limpieza | otros | all (default)"
// @Success      200  {object}  dto.SpendReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analytics/spend [get]
func (h *AnalyticsHandler) Spend(c *fiber.Ctx) error {
	var q dto.SpendReportRequest
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.uc.Report(c.Context(), q.Type)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SpendPDF godoc
// @Summary      Reporte de gasto en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        type  query  string  false  "alimento | limpieza | otros | all (default)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/analytics/spend/pdf [get]
func (h *AnalyticsHandler) SpendPDF(c *fiber.Ctx) error {
	var q dto.SpendReportRequest
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	pdf, err := h.uc.ReportPDF(c.Context(), q.Type)
	if err != nil {
		return writeError(c, err)
	}
	name := fmt.Sprintf("gasto-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(pdf)
}
