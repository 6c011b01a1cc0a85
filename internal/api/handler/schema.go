package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// paginationResponse is the envelope returned with every list payload.
type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func toPaginationResponse(info ports.PageInfo) paginationResponse {
	return paginationResponse{
		Total:      info.Total,
		Page:       info.Page,
		Limit:      info.Limit,
		TotalPages: info.TotalPages,
	}
}

// pageFromQuery reads ?page= and ?limit= query parameters, leaving
// normalization to the service layer.
func pageFromQuery(c echo.Context) ports.PageRequest {
	var page ports.PageRequest
	echo.QueryParamsBinder(c).Int("page", &page.Page).Int("limit", &page.Limit)
	return page
}
