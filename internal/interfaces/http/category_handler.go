package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/application/usecase"
	"github.com/jhoicas/precios-api/internal/domain/entity"
)

// CategoryHandler maneja el catálogo de categorías (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Grouped godoc
// @Summary      Categorías agrupadas por tipo y grupo
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GroupedCategoriesResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/categories/grouped [get]
func (h *CategoryHandler) Grouped(c *fiber.Ctx) error {
	out, err := h.uc.Grouped(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Groups godoc
// @Summary      Grupos distintos de un tipo
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  true  "alimento | limpieza | otros"
// @Success      200  {object}  dto.GroupsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories/groups [get]
func (h *CategoryHandler) Groups(c *fiber.Ctx) error {
	out, err := h.uc.Groups(c.Context(), c.Query("type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Seed godoc
// @Summary      Cargar catálogo predefinido
// @Description  Idempotente: las categorías que ya existen por nombre se omiten.
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SeedResultResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/categories/seed [post]
func (h *CategoryHandler) Seed(c *fiber.Ctx) error {
	out, err := h.uc.Seed(c.Context(), entity.PredefinedCategories())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Los productos que la referencian no se modifican.
// @Tags         categories
// @Security     Bearer
// @Param        id   path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
