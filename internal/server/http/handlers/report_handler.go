package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/report"
)

// ReportHandler renders account statements.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Generate handles GET /api/reports with a format query (pdf or xlsx).
func (h *ReportHandler) Generate(c *gin.Context) {
	format := report.Format(c.DefaultQuery("format", string(report.FormatPDF)))
	if !report.ValidFormat(format) {
		c.Status(http.StatusBadRequest)
		return
	}

	data, err := h.facade.Report(c.Request.Context(), CurrentUserID(c), format)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("savings-report-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	contentType := "application/pdf"
	if format == report.FormatXLSX {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	c.Data(http.StatusOK, contentType, data)
}
