package report

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/echo-report-api/internal/handler"
	"github.com/jwalitptl/echo-report-api/internal/model"
	"github.com/jwalitptl/echo-report-api/internal/schema"
	"github.com/jwalitptl/echo-report-api/internal/service/report"
	apperrors "github.com/jwalitptl/echo-report-api/pkg/errors"
)

type Handler struct {
	service *report.Service
	schema  *schema.Schema
}

func NewHandler(service *report.Service, s *schema.Schema) *Handler {
	return &Handler{service: service, schema: s}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.POST("", h.CreateReport)
		reports.GET("", h.ListReports)
		reports.GET("/:id", h.GetReport)
		reports.POST("/render", h.RenderReport)
		reports.GET("/files/:filename", h.DownloadReport)
	}
	r.GET("/schema", h.GetSchema)
}

func (h *Handler) CreateReport(c *gin.Context) {
	var req model.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(bindingMessage(err)))
		return
	}

	created, err := h.service.CreateReport(c.Request.Context(), req.FormData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{
		"id":         created.ID,
		"created_at": created.CreatedAt,
	}))
}

func (h *Handler) ListReports(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid limit"))
			return
		}
		limit = parsed
	}

	reports, err := h.service.ListReports(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"reports": reports}))
}

func (h *Handler) GetReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid report ID"))
		return
	}

	rep, err := h.service.GetReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(rep))
}

func (h *Handler) RenderReport(c *gin.Context) {
	var req model.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(bindingMessage(err)))
		return
	}

	doc, err := h.service.GenerateDocument(c.Request.Context(), req.FormData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doc))
}

func (h *Handler) DownloadReport(c *gin.Context) {
	name := c.Param("filename")

	path, err := h.service.ResolveDocument(name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.FileAttachment(path, name)
}

// GetSchema exposes the field catalog the browser form renders from. One
// source of truth; the client holds no copy of the field list.
func (h *Handler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"fields":   h.schema.Fields(),
		"sections": h.schema.Sections(),
	}))
}

func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), handler.NewErrorResponse(appErr.Message))
		return
	}
	c.Error(err)
	c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
}

func bindingMessage(err error) string {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr))
		for _, fe := range verr {
			fields = append(fields, fe.Field())
		}
		return "missing required fields: " + strings.Join(fields, ", ")
	}
	return err.Error()
}
