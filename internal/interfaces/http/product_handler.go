package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/precios-api/internal/application/analytics"
	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	history *analytics.HistoryUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, history *analytics.HistoryUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, history: history}
}

// Create godoc
// @Summary      Crear producto
// @Description  El precio inicial abre el historial de precios.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Description  Incluye productos inactivos.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Description  Filtros combinados con AND. Por defecto solo productos activos.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q                 query  string  false  "Texto en nombre o marca"
// @Param        category          query  string  false  "Categoría exacta"
// @Param        type              query  string  false  "alimento | limpieza | otros"
// @Param        group             query  string  false  "Grupo de la categoría"
// @Param        price_min         query  string  false  "Precio mínimo (inclusive)"
// @Param        price_max         query  string  false  "Precio máximo (inclusive)"
// @Param        include_inactive  query  bool    false  "Incluir inactivos"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductQuery
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar producto
// @Description  Un precio distinto al actual agrega una entrada al historial.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar o desactivar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del producto"
// @Param        body  body  dto.SetActiveRequest  true  "Estado"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/active [patch]
func (h *ProductHandler) SetActive(c *fiber.Ctx) error {
	var in dto.SetActiveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "active es requerido"})
	}
	out, err := h.uc.SetActive(c.Context(), c.Params("id"), *in.Active)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Historial mensual de precios
// @Description  Un precio por mes (la última observación del mes), en orden cronológico.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        locale  query  string  false  "es | en (por defecto Accept-Language)"
// @Success      200  {object}  dto.MonthlyHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/history [get]
func (h *ProductHandler) History(c *fiber.Ctx) error {
	var q dto.HistoryRequest
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	locale := q.Locale
	if locale == "" {
		locale = c.Get(fiber.HeaderAcceptLanguage)
	}
	out, err := h.history.MonthlyHistory(c.Context(), c.Params("id"), locale)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
