package handlers

import (
	"net/http"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/dto"
	"github.com/SscSPs/org_ledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	rg.GET("/general-ledger", h.listGeneralLedger)
	rg.GET("/accounts/:account_id/ledger", h.listAccountLedger)
	rg.GET("/account-balances", h.listAccountBalances)
	rg.GET("/ledger/verify", h.verifyLedger)
}

// listGeneralLedger godoc
// @Summary List general ledger rows
// @Description Lists ledger rows ordered by transaction date then id. Pass nextToken from the previous page to continue.
// @Tags ledger
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Param   accountId query int false "Account ID"
// @Param   fiscalPeriodId query int false "Fiscal period ID"
// @Param   startDate query string false "Earliest transaction date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest transaction date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Cursor of the next page"
// @Success 200 {object} dto.ListLedgerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/general-ledger [get]
func (h *ledgerHandler) listGeneralLedger(c *gin.Context) {
	orgID, _, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var params dto.ListLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	filter := domain.LedgerFilter{Limit: params.Limit}
	if params.AccountID > 0 {
		filter.AccountID = &params.AccountID
	}
	if params.FiscalPeriodID > 0 {
		filter.FiscalPeriodID = &params.FiscalPeriodID
	}
	if filter.StartDate, err = parseOptionalDate(params.StartDate); err != nil {
		respondError(c, err)
		return
	}
	if filter.EndDate, err = parseOptionalDate(params.EndDate); err != nil {
		respondError(c, err)
		return
	}
	if params.NextToken != "" {
		afterDate, afterID, err := pagination.DecodeLedgerToken(params.NextToken)
		if err != nil {
			respondError(c, apperrors.NewValidationError("Invalid nextToken"))
			return
		}
		filter.AfterDate = &afterDate
		filter.AfterID = afterID
	}

	rows, nextToken, err := h.ledgerService.ListGeneralLedger(c.Request.Context(), orgID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListLedgerResponse{Rows: rows, NextToken: nextToken})
}

// listAccountLedger godoc
// @Summary List one account's ledger rows
// @Description Lists the ledger rows of an account in posting order with their running balances.
// @Tags ledger
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Param   account_id path int true "Account ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Cursor of the next page"
// @Success 200 {object} dto.ListLedgerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/accounts/{account_id}/ledger [get]
func (h *ledgerHandler) listAccountLedger(c *gin.Context) {
	orgID, _, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}
	accountID, err := pathID(c, "account_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var params dto.ListAccountLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	var afterID int64
	if params.NextToken != "" {
		if afterID, err = pagination.DecodeIDToken(params.NextToken); err != nil {
			respondError(c, apperrors.NewValidationError("Invalid nextToken"))
			return
		}
	}

	rows, nextToken, err := h.ledgerService.ListAccountLedger(c.Request.Context(), orgID, accountID, afterID, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListLedgerResponse{Rows: rows, NextToken: nextToken})
}

// listAccountBalances godoc
// @Summary List account balances of a fiscal period
// @Tags ledger
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Param   fiscalPeriodId query int true "Fiscal period ID"
// @Success 200 {object} dto.ListAccountBalancesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/account-balances [get]
func (h *ledgerHandler) listAccountBalances(c *gin.Context) {
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

	balances, err := h.ledgerService.ListAccountBalances(c.Request.Context(), orgID, params.FiscalPeriodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountBalancesResponse{FiscalPeriodID: params.FiscalPeriodID, AccountBalances: balances})
}

// verifyLedger godoc
// @Summary Verify the ledger
// @Description Replays every ledger row and reports running balance and aggregate discrepancies.
// @Tags ledger
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Success 200 {object} domain.LedgerVerification
// @Security BearerAuth
// @Router /organizations/{org_id}/ledger/verify [get]
func (h *ledgerHandler) verifyLedger(c *gin.Context) {
	orgID, _, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.ledgerService.VerifyLedger(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
