package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/application/usecase"
)

// CatalogHandler refresco del catálogo filtrado por sesión de usuario.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Refresh godoc
// @Summary      Refrescar catálogo
// @Description  Lee productos y categorías en paralelo y aplica el filtro. Una petición
//               más reciente del mismo usuario invalida la anterior (409 SUPERSEDED).
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q                 query  string  false  "Texto en nombre o marca"
// @Param        category          query  string  false  "Categoría exacta"
// @Param        type              query  string  false  "alimento | limpieza | otros"
// @Param        group             query  string  false  "Grupo de la categoría"
// @Param        price_min         query  string  false  "Precio mínimo (inclusive)"
// @Param        price_max         query  string  false  "Precio máximo (inclusive)"
// @Param        include_inactive  query  bool    false  "Incluir inactivos"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Refresh(c *fiber.Ctx) error {
	var q dto.ProductQuery
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.uc.Refresh(c.Context(), GetUserID(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
