package dto

import (
	"time"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryItemRequest is one line of a new draft entry.
type CreateJournalEntryItemRequest struct {
	AccountID    int64           `json:"accountId" binding:"required,gt=0"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount" binding:"gte=0"`
	CreditAmount decimal.Decimal `json:"creditAmount" binding:"gte=0"`
	Memo         string          `json:"memo"`
	Dimensions   map[string]any  `json:"dimensions"`
}

// CreateJournalEntryRequest defines the data needed to create a draft journal entry.
type CreateJournalEntryRequest struct {
	EntryDate      string                          `json:"entryDate" binding:"required,datetime=2006-01-02"`
	FiscalPeriodID int64                           `json:"fiscalPeriodId" binding:"required,gt=0"`
	Description    string                          `json:"description"`
	Reference      string                          `json:"reference"`
	CurrencyCode   string                          `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
	ExchangeRate   *decimal.Decimal                `json:"exchangeRate" binding:"omitempty,gt=0"`
	Items          []CreateJournalEntryItemRequest `json:"items" binding:"required,min=2,dive"`
}

// ListJournalEntriesParams are the query parameters of the entry listing.
type ListJournalEntriesParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=draft posted voided"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Reference string `form:"reference"`
	Search    string `form:"search"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
}

// JournalEntryItemResponse defines the data returned for a journal entry item.
type JournalEntryItemResponse struct {
	ID               int64           `json:"id"`
	AccountID        int64           `json:"accountId"`
	Description      string          `json:"description"`
	Memo             string          `json:"memo"`
	DebitAmount      decimal.Decimal `json:"debitAmount"`
	CreditAmount     decimal.Decimal `json:"creditAmount"`
	BaseDebitAmount  decimal.Decimal `json:"baseDebitAmount"`
	BaseCreditAmount decimal.Decimal `json:"baseCreditAmount"`
	Dimensions       map[string]any  `json:"dimensions,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	ID             int64                      `json:"id"`
	EntryNo        string                     `json:"entryNo"`
	EntryDate      string                     `json:"entryDate"`
	FiscalPeriodID int64                      `json:"fiscalPeriodId"`
	Description    string                     `json:"description"`
	Reference      string                     `json:"reference"`
	Status         domain.JournalEntryStatus  `json:"status"`
	CurrencyCode   string                     `json:"currencyCode"`
	ExchangeRate   decimal.Decimal            `json:"exchangeRate"`
	CreatedBy      string                     `json:"createdBy"`
	CreatedAt      time.Time                  `json:"createdAt"`
	ApprovedBy     *string                    `json:"approvedBy,omitempty"`
	PostedAt       *time.Time                 `json:"postedAt,omitempty"`
	Items          []JournalEntryItemResponse `json:"items,omitempty"`
}

// PaginationResponse describes an offset page.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	JournalEntries []JournalEntryResponse `json:"journalEntries"`
	Pagination     PaginationResponse     `json:"pagination"`
}

// PostJournalEntryResponse is returned after a successful post.
type PostJournalEntryResponse struct {
	ID       int64                     `json:"id"`
	EntryNo  string                    `json:"entryNo"`
	Status   domain.JournalEntryStatus `json:"status"`
	PostedAt time.Time                 `json:"postedAt"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO, items included.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		ID:             e.ID,
		EntryNo:        e.EntryNo,
		EntryDate:      e.EntryDate.Format("2006-01-02"),
		FiscalPeriodID: e.FiscalPeriodID,
		Description:    e.Description,
		Reference:      e.Reference,
		Status:         e.Status,
		CurrencyCode:   e.CurrencyCode,
		ExchangeRate:   e.ExchangeRate,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		ApprovedBy:     e.ApprovedBy,
		PostedAt:       e.PostedAt,
	}
	if len(e.Items) > 0 {
		resp.Items = make([]JournalEntryItemResponse, len(e.Items))
		for i, item := range e.Items {
			resp.Items[i] = JournalEntryItemResponse{
				ID:               item.ID,
				AccountID:        item.AccountID,
				Description:      item.Description,
				Memo:             item.Memo,
				DebitAmount:      item.DebitAmount,
				CreditAmount:     item.CreditAmount,
				BaseDebitAmount:  item.BaseDebitAmount,
				BaseCreditAmount: item.BaseCreditAmount,
				Dimensions:       item.Dimensions,
			}
		}
	}
	return resp
}

// ToListJournalEntriesResponse converts a page of entries and its total.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, page, limit int, total int64, totalPages int) ListJournalEntriesResponse {
	resp := ListJournalEntriesResponse{
		JournalEntries: make([]JournalEntryResponse, len(entries)),
		Pagination: PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
	for i := range entries {
		resp.JournalEntries[i] = ToJournalEntryResponse(&entries[i])
	}
	return resp
}

// ToPostJournalEntryResponse converts a posting result.
func ToPostJournalEntryResponse(r *domain.PostingResult) PostJournalEntryResponse {
	return PostJournalEntryResponse{
		ID:       r.ID,
		EntryNo:  r.EntryNo,
		Status:   r.Status,
		PostedAt: r.PostedAt,
	}
}
