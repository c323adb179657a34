package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/dto"
	"github.com/SscSPs/org_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	now              func() time.Time
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := &reportingHandler{
		reportingService: reportingService,
		now:              func() time.Time { return time.Now().UTC() },
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/trial-balance/export", h.exportTrialBalance)
	}
}

// getTrialBalance godoc
// @Summary Get the trial balance of a fiscal period
// @Description Returns opening, debit, credit and closing per account with totals and an account type summary.
// @Tags reports
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Param   fiscalPeriodId query int true "Fiscal period ID"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	orgID, _, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var params dto.FiscalPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), orgID, params.FiscalPeriodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report, h.now()))
}

// exportTrialBalance godoc
// @Summary Export the trial balance as XLSX
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   org_id path int true "Organization ID"
// @Param   fiscalPeriodId query int true "Fiscal period ID"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/reports/trial-balance/export [get]
func (h *reportingHandler) exportTrialBalance(c *gin.Context) {
	orgID, _, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var params dto.FiscalPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	// Buffer the workbook so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := h.reportingService.ExportTrialBalance(c.Request.Context(), orgID, params.FiscalPeriodID, &buf); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("trial-balance-%d-%d.xlsx", orgID, params.FiscalPeriodID)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Trial balance exported",
		slog.Int64("fiscal_period_id", params.FiscalPeriodID),
		slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
