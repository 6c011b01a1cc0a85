package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/api/metrics"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// The three lookup tables (categories, courses, measurements) share one
// request/response shape: an id and a name.

type lookupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type lookupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type listLookupResponse struct {
	Data       []lookupResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// CategoryHandler handles HTTP requests for recipe categories.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// @Summary  List categories
// @Tags     categories
// @Produce  json
// @Success  200  {object}  listLookupResponse
// @Router   /api/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	items, info, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	data := make([]lookupResponse, 0, len(items))
	for _, item := range items {
		data = append(data, lookupResponse{ID: item.ID, Name: item.Name})
	}
	return c.JSON(http.StatusOK, listLookupResponse{Data: data, Pagination: toPaginationResponse(info)})
}

// @Summary  Get a category by ID
// @Tags     categories
// @Produce  json
// @Param    id  path  string  true  "Category ID"
// @Success  200  {object}  lookupResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lookupResponse{ID: category.ID, Name: category.Name})
}

// @Summary   Add a category
// @Tags      categories
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body  lookupRequest  true  "Category name"
// @Success   201  {object}  lookupResponse
// @Router    /api/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	name, ok := bindLookupName(c)
	if !ok {
		return nil
	}
	category, err := h.service.Create(c.Request().Context(), name)
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("category", "create").Inc()
	return c.JSON(http.StatusCreated, lookupResponse{ID: category.ID, Name: category.Name})
}

// @Summary   Delete a category
// @Tags      categories
// @Security  BearerAuth
// @Param     id  path  string  true  "Category ID"
// @Success   204
// @Router    /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("category", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// CourseHandler handles HTTP requests for meal courses.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// @Summary  List courses
// @Tags     courses
// @Produce  json
// @Success  200  {object}  listLookupResponse
// @Router   /api/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	items, info, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	data := make([]lookupResponse, 0, len(items))
	for _, item := range items {
		data = append(data, lookupResponse{ID: item.ID, Name: item.Name})
	}
	return c.JSON(http.StatusOK, listLookupResponse{Data: data, Pagination: toPaginationResponse(info)})
}

// @Summary  Get a course by ID
// @Tags     courses
// @Produce  json
// @Param    id  path  string  true  "Course ID"
// @Success  200  {object}  lookupResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lookupResponse{ID: course.ID, Name: course.Name})
}

// @Summary   Add a course
// @Tags      courses
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body  lookupRequest  true  "Course name"
// @Success   201  {object}  lookupResponse
// @Router    /api/courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	name, ok := bindLookupName(c)
	if !ok {
		return nil
	}
	course, err := h.service.Create(c.Request().Context(), name)
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("course", "create").Inc()
	return c.JSON(http.StatusCreated, lookupResponse{ID: course.ID, Name: course.Name})
}

// @Summary   Delete a course
// @Tags      courses
// @Security  BearerAuth
// @Param     id  path  string  true  "Course ID"
// @Success   204
// @Router    /api/courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("course", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// MeasurementHandler handles HTTP requests for measurement units.
type MeasurementHandler struct {
	service ports.MeasurementService
}

func NewMeasurementHandler(service ports.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{service: service}
}

// @Summary   List measurements
// @Tags      measurements
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  listLookupResponse
// @Router    /api/measurements [get]
func (h *MeasurementHandler) List(c echo.Context) error {
	items, info, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	data := make([]lookupResponse, 0, len(items))
	for _, item := range items {
		data = append(data, lookupResponse{ID: item.ID, Name: item.Name})
	}
	return c.JSON(http.StatusOK, listLookupResponse{Data: data, Pagination: toPaginationResponse(info)})
}

// @Summary   Get a measurement by ID
// @Tags      measurements
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  string  true  "Measurement ID"
// @Success   200  {object}  lookupResponse
// @Failure   404  {object}  errorResponse
// @Router    /api/measurements/{id} [get]
func (h *MeasurementHandler) Get(c echo.Context) error {
	measurement, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lookupResponse{ID: measurement.ID, Name: measurement.Name})
}

// @Summary   Add a measurement
// @Tags      measurements
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body  lookupRequest  true  "Measurement name"
// @Success   201  {object}  lookupResponse
// @Router    /api/measurements [post]
func (h *MeasurementHandler) Create(c echo.Context) error {
	name, ok := bindLookupName(c)
	if !ok {
		return nil
	}
	measurement, err := h.service.Create(c.Request().Context(), name)
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("measurement", "create").Inc()
	return c.JSON(http.StatusCreated, lookupResponse{ID: measurement.ID, Name: measurement.Name})
}

// @Summary   Delete a measurement
// @Tags      measurements
// @Security  BearerAuth
// @Param     id  path  string  true  "Measurement ID"
// @Success   204
// @Router    /api/measurements/{id} [delete]
func (h *MeasurementHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("measurement", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// bindLookupName binds and validates the shared {"name": ...} payload.
// On failure it writes the 400 response itself and reports ok=false.
func bindLookupName(c echo.Context) (string, bool) {
	var req lookupRequest
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return "", false
	}
	if err := c.Validate(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return "", false
	}
	return req.Name, true
}
