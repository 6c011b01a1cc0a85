package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/api/metrics"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// IngredientHandler handles HTTP requests for ingredient operations.
type IngredientHandler struct {
	service ports.IngredientService
}

func NewIngredientHandler(service ports.IngredientService) *IngredientHandler {
	return &IngredientHandler{service: service}
}

type ingredientRequest struct {
	Name                string `json:"name"                  validate:"required,max=100"`
	CaloriesPerQuantity int    `json:"calories_per_quantity" validate:"min=0"`
	CropID              string `json:"crop_id"`
}

type ingredientResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	CaloriesPerQuantity int    `json:"calories_per_quantity,omitempty"`
	CropID              string `json:"crop_id,omitempty"`
}

func toIngredientResponse(in *domain.Ingredient) ingredientResponse {
	return ingredientResponse{
		ID:                  in.ID,
		Name:                in.Name,
		CaloriesPerQuantity: in.CaloriesPerQuantity,
		CropID:              in.CropID,
	}
}

type listIngredientsResponse struct {
	Data       []ingredientResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}

// List handles GET /api/ingredients.
//
// @Summary      List ingredients
// @Tags         ingredients
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  listIngredientsResponse
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c echo.Context) error {
	items, info, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	data := make([]ingredientResponse, 0, len(items))
	for i := range items {
		data = append(data, toIngredientResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, listIngredientsResponse{Data: data, Pagination: toPaginationResponse(info)})
}

// Get handles GET /api/ingredients/:id.
//
// @Summary      Get an ingredient by ID
// @Tags         ingredients
// @Produce      json
// @Param        id   path      string  true  "Ingredient ID"
// @Success      200  {object}  ingredientResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/ingredients/{id} [get]
func (h *IngredientHandler) Get(c echo.Context) error {
	ingredient, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

// Create handles POST /api/ingredients.
//
// @Summary      Add a new ingredient
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ingredientRequest  true  "Ingredient details"
// @Success      201   {object}  ingredientResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c echo.Context) error {
	var req ingredientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ingredient, err := h.service.Create(c.Request().Context(), ports.IngredientInput{
		Name:                req.Name,
		CaloriesPerQuantity: req.CaloriesPerQuantity,
		CropID:              req.CropID,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("ingredient", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/api/ingredients/"+ingredient.ID)
	return c.JSON(http.StatusCreated, toIngredientResponse(ingredient))
}

// Update handles PUT /api/ingredients/:id.
//
// @Summary      Update an existing ingredient
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Ingredient ID"
// @Param        body  body      ingredientRequest  true  "Ingredient details"
// @Success      200   {object}  ingredientResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/ingredients/{id} [put]
func (h *IngredientHandler) Update(c echo.Context) error {
	var req ingredientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ingredient, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.IngredientInput{
		Name:                req.Name,
		CaloriesPerQuantity: req.CaloriesPerQuantity,
		CropID:              req.CropID,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("ingredient", "update").Inc()
	return c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

// Delete handles DELETE /api/ingredients/:id.
//
// @Summary      Delete an ingredient
// @Tags         ingredients
// @Security     BearerAuth
// @Param        id  path  string  true  "Ingredient ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("ingredient", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
