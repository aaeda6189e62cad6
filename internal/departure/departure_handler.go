package departure

import (
	"net/http"
	"strconv"

	"rrhh-admin/internal/shared/apperror"
	"rrhh-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("departure.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("departure.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("departure request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Screen(c *gin.Context) {
	var query ScreenQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warn("http departures screen validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	resp, err := h.service.Screen(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp.Rows))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp.Rows) {
		start = len(resp.Rows)
	}
	if end > len(resp.Rows) {
		end = len(resp.Rows)
	}
	resp.Rows = resp.Rows[start:end]

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDepartureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create departure validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecideDepartureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http decide departure validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
