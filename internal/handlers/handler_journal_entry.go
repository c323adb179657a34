package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/dto"
	"github.com/SscSPs/org_ledger_app/internal/middleware"
	"github.com/SscSPs/org_ledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests related to journal entries.
type journalEntryHandler struct {
	entryService   portssvc.JournalEntrySvcFacade
	postingService portssvc.PostingSvc
}

// registerJournalEntryRoutes registers routes related to journal entries.
func registerJournalEntryRoutes(rg *gin.RouterGroup, entryService portssvc.JournalEntrySvcFacade, postingService portssvc.PostingSvc) {
	h := &journalEntryHandler{
		entryService:   entryService,
		postingService: postingService,
	}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:entry_id", h.getJournalEntry)
		entries.POST("/:entry_id/post", h.postJournalEntry)
		entries.POST("/:entry_id/void", h.voidJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a draft journal entry
// @Description Validates and stores a balanced draft journal entry. The entry number is assigned by the server.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error, closed period or unbalanced entry"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Account or fiscal period not found"
// @Security BearerAuth
// @Router /organizations/{org_id}/journal-entries [post]
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID, userID, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create journal entry", slog.Int("item_count", len(req.Items)))
	entry, err := h.entryService.CreateJournalEntry(c.Request.Context(), orgID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists journal entries newest first with page based pagination.
// @Tags journal-entries
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Param   status query string false "draft, posted or voided"
// @Param   startDate query string false "Earliest entry date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest entry date (YYYY-MM-DD)"
// @Param   reference query string false "Exact reference"
// @Param   search query string false "Matches entry number, description or reference"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/journal-entries [get]
func (h *journalEntryHandler) listJournalEntries(c *gin.Context) {
	orgID, _, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	filter := domain.JournalEntryFilter{
		Reference: params.Reference,
		Search:    params.Search,
		Page:      domain.Page{Page: params.Page, Limit: params.Limit},
	}
	if params.Status != "" {
		status := domain.JournalEntryStatus(params.Status)
		filter.Status = &status
	}
	if filter.StartDate, err = parseOptionalDate(params.StartDate); err != nil {
		respondError(c, err)
		return
	}
	if filter.EndDate, err = parseOptionalDate(params.EndDate); err != nil {
		respondError(c, err)
		return
	}

	entries, total, err := h.entryService.ListJournalEntries(c.Request.Context(), orgID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries, params.Page, params.Limit, total, pagination.TotalPages(total, params.Limit)))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry with its items.
// @Tags journal-entries
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Param   entry_id path int true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/journal-entries/{entry_id} [get]
func (h *journalEntryHandler) getJournalEntry(c *gin.Context) {
	orgID, _, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}
	entryID, err := pathID(c, "entry_id")
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.entryService.GetJournalEntry(c.Request.Context(), orgID, entryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// postJournalEntry godoc
// @Summary Post a journal entry
// @Description Posts a draft entry to the general ledger and updates account balances atomically. The caller is recorded as approver.
// @Tags journal-entries
// @Produce  json
// @Param   org_id path int true "Organization ID"
// @Param   entry_id path int true "Journal entry ID"
// @Success 200 {object} dto.PostJournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Already posted, voided, closed period or unbalanced"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Posting already in progress"
// @Failure 503 {object} dto.ErrorResponse "Transient storage failure"
// @Security BearerAuth
// @Router /organizations/{org_id}/journal-entries/{entry_id}/post [post]
func (h *journalEntryHandler) postJournalEntry(c *gin.Context) {
	orgID, userID, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}
	entryID, err := pathID(c, "entry_id")
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.postingService.PostJournalEntry(c.Request.Context(), orgID, entryID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostJournalEntryResponse(result))
}

// voidJournalEntry godoc
// @Summary Void a draft journal entry
// @Tags journal-entries
// @Param   org_id path int true "Organization ID"
// @Param   entry_id path int true "Journal entry ID"
// @Success 204 "Voided"
// @Failure 400 {object} dto.ErrorResponse "Already posted or voided"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/journal-entries/{entry_id}/void [post]
func (h *journalEntryHandler) voidJournalEntry(c *gin.Context) {
	orgID, userID, err := requestScope(c)
	if err != nil {
		respondError(c, err)
		return
	}
	entryID, err := pathID(c, "entry_id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.entryService.VoidJournalEntry(c.Request.Context(), orgID, entryID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
