package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tsegayberhanu/echodash/apperr"
)

// Uniform response envelope. Paginated responses add meta.pagination.
type envelope struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    *meta  `json:"meta,omitempty"`
}

type meta struct {
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	CurrentPage  int  `json:"currentPage"`
	ItemsPerPage int  `json:"itemsPerPage"`
	TotalItems   int  `json:"totalItems"`
	TotalPages   int  `json:"totalPages"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
	NextPage     *int `json:"nextPage"`
	PrevPage     *int `json:"prevPage"`
}

type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	respondOKWith(c, data, "SUCCESS", "Request successful")
}

func respondOKWith(c *gin.Context, data any, code, message string) {
	c.JSON(http.StatusOK, envelope{Status: "success", Code: code, Message: message, Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, envelope{
		Status:  "success",
		Code:    "CREATED",
		Message: "Resource created successfully",
		Data:    data,
	})
}

func respondDeleted(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func respondPaginated(c *gin.Context, data any, page, limit, total int) {
	totalPages := (total + limit - 1) / limit
	p := pagination{
		CurrentPage:  page,
		ItemsPerPage: limit,
		TotalItems:   total,
		TotalPages:   totalPages,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}
	c.JSON(http.StatusOK, envelope{
		Status:  "success",
		Code:    "PAGINATED_RESULT",
		Message: "Paginated data fetched successfully",
		Data:    data,
		Meta:    &meta{Pagination: p},
	})
}

// respondError maps the error taxonomy onto status codes. Unclassified
// failures are logged and answered as generic internal errors.
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(appErr.Status, errorBody{
		Status:  "error",
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}
