package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/api/metrics"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	service ports.RecipeService
}

func NewRecipeHandler(service ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// List handles GET /api/recipes.
//
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  listRecipesResponse
// @Router       /api/recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	return h.list(c, ports.RecipeFilter{})
}

// ListByCategory handles GET /api/recipes/category/:catId.
//
// @Summary      List recipes in a category
// @Tags         recipes
// @Produce      json
// @Param        catId  path      string  true  "Category ID"
// @Success      200    {object}  listRecipesResponse
// @Router       /api/recipes/category/{catId} [get]
func (h *RecipeHandler) ListByCategory(c echo.Context) error {
	return h.list(c, ports.RecipeFilter{CategoryID: c.Param("catId")})
}

// ListByCourse handles GET /api/recipes/course/:courseId.
//
// @Summary      List recipes for a course
// @Tags         recipes
// @Produce      json
// @Param        courseId  path      string  true  "Course ID"
// @Success      200       {object}  listRecipesResponse
// @Router       /api/recipes/course/{courseId} [get]
func (h *RecipeHandler) ListByCourse(c echo.Context) error {
	return h.list(c, ports.RecipeFilter{CourseID: c.Param("courseId")})
}

// ListByIngredient handles GET /api/recipes/ingredient/:ingrId.
//
// @Summary      List recipes using an ingredient
// @Tags         recipes
// @Produce      json
// @Param        ingrId  path      string  true  "Ingredient ID"
// @Success      200     {object}  listRecipesResponse
// @Router       /api/recipes/ingredient/{ingrId} [get]
func (h *RecipeHandler) ListByIngredient(c echo.Context) error {
	return h.list(c, ports.RecipeFilter{IngredientID: c.Param("ingrId")})
}

func (h *RecipeHandler) list(c echo.Context, filter ports.RecipeFilter) error {
	recipes, info, err := h.service.List(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListRecipesResponse(recipes, info))
}

// Get handles GET /api/recipes/:id.
//
// @Summary      Get a recipe by ID
// @Tags         recipes
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  recipeResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	recipe, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Create handles POST /api/recipes.
//
// @Summary      Create a new recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recipeRequest  true  "Recipe details"
// @Success      201   {object}  recipeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	var req recipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	recipe, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("recipe", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/api/recipes/"+recipe.ID)
	return c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

// Update handles PUT /api/recipes/:id.
//
// @Summary      Update an existing recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Recipe ID"
// @Param        body  body      recipeRequest  true  "Recipe details"
// @Success      200   {object}  recipeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	var req recipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	recipe, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("recipe", "update").Inc()
	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Delete handles DELETE /api/recipes/:id.
//
// @Summary      Delete a recipe
// @Tags         recipes
// @Security     BearerAuth
// @Param        id  path  string  true  "Recipe ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("recipe", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
