package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/api/metrics"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// CropHandler handles HTTP requests for crop operations.
type CropHandler struct {
	service ports.CropService
}

func NewCropHandler(service ports.CropService) *CropHandler {
	return &CropHandler{service: service}
}

// List handles GET /api/crops.
//
// @Summary      List crops
// @Tags         crops
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  listCropsResponse
// @Router       /api/crops [get]
func (h *CropHandler) List(c echo.Context) error {
	crops, info, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListCropsResponse(crops, info))
}

// Search handles GET /api/crops/search?name=.
//
// @Summary      Search crops by name
// @Tags         crops
// @Produce      json
// @Param        name   query     string  true  "Name fragment, case-insensitive"
// @Param        page   query     int     false "Page number"
// @Param        limit  query     int     false "Items per page"
// @Success      200    {object}  listCropsResponse
// @Router       /api/crops/search [get]
func (h *CropHandler) Search(c echo.Context) error {
	crops, info, err := h.service.Search(c.Request().Context(), c.QueryParam("name"), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListCropsResponse(crops, info))
}

// Get handles GET /api/crops/:id.
//
// @Summary      Get a crop by ID
// @Tags         crops
// @Produce      json
// @Param        id   path      string  true  "Crop ID"
// @Success      200  {object}  cropResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/crops/{id} [get]
func (h *CropHandler) Get(c echo.Context) error {
	crop, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCropResponse(crop))
}

// Create handles POST /api/crops.
//
// @Summary      Add a new crop
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cropRequest  true  "Crop details"
// @Success      201   {object}  cropResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/crops [post]
func (h *CropHandler) Create(c echo.Context) error {
	var req cropRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	crop, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("crop", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/api/crops/"+crop.ID)
	return c.JSON(http.StatusCreated, toCropResponse(crop))
}

// Update handles PUT /api/crops/:id.
//
// @Summary      Update an existing crop
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Crop ID"
// @Param        body  body      cropRequest  true  "Crop details"
// @Success      200   {object}  cropResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/crops/{id} [put]
func (h *CropHandler) Update(c echo.Context) error {
	var req cropRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	crop, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("crop", "update").Inc()
	return c.JSON(http.StatusOK, toCropResponse(crop))
}

// Delete handles DELETE /api/crops/:id.
//
// @Summary      Delete a crop
// @Tags         crops
// @Security     BearerAuth
// @Param        id  path  string  true  "Crop ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/crops/{id} [delete]
func (h *CropHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("crop", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
