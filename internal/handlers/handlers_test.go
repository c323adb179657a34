package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/dto"
	"github.com/SscSPs/org_ledger_app/internal/handlers"
	"github.com/SscSPs/org_ledger_app/internal/middleware"
	"github.com/SscSPs/org_ledger_app/internal/platform/config"
	"github.com/SscSPs/org_ledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock services ---

type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) CreateJournalEntry(ctx context.Context, organizationID int64, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) GetJournalEntry(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) ListJournalEntries(ctx context.Context, organizationID int64, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int64, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalEntryService) VoidJournalEntry(ctx context.Context, organizationID, entryID int64, userID string) error {
	args := m.Called(ctx, organizationID, entryID, userID)
	return args.Error(0)
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostJournalEntry(ctx context.Context, organizationID, entryID int64, actingUserID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, organizationID, entryID, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

var _ portssvc.PostingSvc = (*MockPostingService)(nil)

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListGeneralLedger(ctx context.Context, organizationID int64, filter domain.LedgerFilter) ([]domain.GeneralLedgerRow, *string, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	next, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.GeneralLedgerRow), next, args.Error(2)
}

func (m *MockLedgerService) ListAccountLedger(ctx context.Context, organizationID, accountID, afterID int64, limit int) ([]domain.GeneralLedgerRow, *string, error) {
	args := m.Called(ctx, organizationID, accountID, afterID, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	next, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.GeneralLedgerRow), next, args.Error(2)
}

func (m *MockLedgerService) ListAccountBalances(ctx context.Context, organizationID, fiscalPeriodID int64) ([]domain.AccountBalanceView, error) {
	args := m.Called(ctx, organizationID, fiscalPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalanceView), args.Error(1)
}

func (m *MockLedgerService) VerifyLedger(ctx context.Context, organizationID int64) (*domain.LedgerVerification, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerVerification), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, organizationID, fiscalPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportingService) ExportTrialBalance(ctx context.Context, organizationID, fiscalPeriodID int64, w io.Writer) error {
	args := m.Called(ctx, organizationID, fiscalPeriodID, w)
	if args.Error(0) == nil {
		_, _ = w.Write([]byte("PK-xlsx"))
	}
	return args.Error(0)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Test Suite ---

const (
	testOrgID  int64 = 7
	testUserID       = "user-1"
)

type HandlersTestSuite struct {
	suite.Suite
	router        *gin.Engine
	jwtSecret     string
	entryService  *MockJournalEntryService
	postService   *MockPostingService
	ledgerService *MockLedgerService
	reportService *MockReportingService
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.entryService = new(MockJournalEntryService)
	suite.postService = new(MockPostingService)
	suite.ledgerService = new(MockLedgerService)
	suite.reportService = new(MockReportingService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		JWTIssuer:    "ledger-test",
		RateLimit:    "1000-M",
		IsProduction: true,
	}
	suite.router = gin.New()
	err := handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		JournalEntry: suite.entryService,
		Posting:      suite.postService,
		Ledger:       suite.ledgerService,
		Reporting:    suite.reportService,
	})
	suite.Require().NoError(err)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.entryService.AssertExpectations(suite.T())
	suite.postService.AssertExpectations(suite.T())
	suite.ledgerService.AssertExpectations(suite.T())
	suite.reportService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) token(orgs ...int64) string {
	signed, err := middleware.GenerateLedgerToken(testUserID, orgs, suite.jwtSecret, "ledger-test", time.Hour)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+suite.token(testOrgID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) errorBody(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)
	return body
}

func validEntryRequest() map[string]any {
	return map[string]any{
		"entryDate":      "2025-03-15",
		"fiscalPeriodId": 10,
		"description":    "Cash sale",
		"items": []map[string]any{
			{"accountId": 100, "debitAmount": "100.00"},
			{"accountId": 200, "creditAmount": "100.00"},
		},
	}
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestCreateJournalEntry_Success() {
	created := &domain.JournalEntry{
		ID:             1,
		OrganizationID: testOrgID,
		EntryNo:        "JE-2025-0001",
		EntryDate:      time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		FiscalPeriodID: 10,
		Status:         domain.StatusDraft,
		ExchangeRate:   decimal.NewFromInt(1),
	}
	suite.entryService.On("CreateJournalEntry", mock.Anything, testOrgID,
		mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
			return len(req.Items) == 2 && req.Items[0].DebitAmount.Equal(decimal.NewFromInt(100))
		}), testUserID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/7/journal-entries", validEntryRequest())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JE-2025-0001", resp.EntryNo)
	suite.Equal("2025-03-15", resp.EntryDate)
	suite.Equal(domain.StatusDraft, resp.Status)
}

func (suite *HandlersTestSuite) TestCreateJournalEntry_SingleItemRejectedByBinding() {
	req := validEntryRequest()
	req["items"] = []map[string]any{{"accountId": 100, "debitAmount": "1"}}

	w := suite.do(http.MethodPost, "/api/v1/organizations/7/journal-entries", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.CodeValidation, suite.errorBody(w).Error.Code)
	suite.entryService.AssertNotCalled(suite.T(), "CreateJournalEntry")
}

func (suite *HandlersTestSuite) TestCreateJournalEntry_NegativeAmountRejected() {
	req := validEntryRequest()
	req["items"] = []map[string]any{
		{"accountId": 100, "debitAmount": "-5"},
		{"accountId": 200, "creditAmount": "-5"},
	}

	w := suite.do(http.MethodPost, "/api/v1/organizations/7/journal-entries", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.errorBody(w)
	suite.Equal(apperrors.CodeValidation, body.Error.Code)
	suite.Contains(body.Error.Details, "fields")
}

func (suite *HandlersTestSuite) TestCreateJournalEntry_UnbalancedFromService() {
	suite.entryService.On("CreateJournalEntry", mock.Anything, testOrgID, mock.Anything, testUserID).
		Return(nil, apperrors.NewUnbalancedEntryError(decimal.NewFromInt(100), decimal.RequireFromString("99.98"))).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/7/journal-entries", validEntryRequest())

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.errorBody(w)
	suite.Equal(apperrors.CodeUnbalancedEntry, body.Error.Code)
	suite.Contains(body.Error.Details, "difference")
}

func (suite *HandlersTestSuite) TestForbiddenOrganization() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/8/journal-entries", nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.entryService.AssertNotCalled(suite.T(), "ListJournalEntries")
}

func (suite *HandlersTestSuite) TestListJournalEntries_PassesFilter() {
	entries := []domain.JournalEntry{{ID: 2, EntryNo: "JE-2025-0002", Status: domain.StatusPosted}}
	suite.entryService.On("ListJournalEntries", mock.Anything, testOrgID,
		mock.MatchedBy(func(f domain.JournalEntryFilter) bool {
			return f.Status != nil && *f.Status == domain.StatusPosted &&
				f.StartDate != nil && f.StartDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				f.Search == "rent" && f.Page.Page == 2 && f.Page.Limit == 5
		})).Return(entries, int64(6), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/journal-entries?status=posted&startDate=2025-01-01&search=rent&page=2&limit=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.JournalEntries, 1)
	suite.Equal(int64(6), resp.Pagination.Total)
	suite.Equal(2, resp.Pagination.TotalPages)
}

func (suite *HandlersTestSuite) TestGetJournalEntry_NotFound() {
	suite.entryService.On("GetJournalEntry", mock.Anything, testOrgID, int64(99)).
		Return(nil, apperrors.NewNotFoundError("Journal entry 99 not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/journal-entries/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(apperrors.CodeNotFound, suite.errorBody(w).Error.Code)
}

func (suite *HandlersTestSuite) TestGetJournalEntry_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/7/journal-entries/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestPostJournalEntry_Success() {
	postedAt := time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)
	suite.postService.On("PostJournalEntry", mock.Anything, testOrgID, int64(5), testUserID).
		Return(&domain.PostingResult{ID: 5, EntryNo: "JE-2025-0005", Status: domain.StatusPosted, PostedAt: postedAt}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/7/journal-entries/5/post", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostJournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.StatusPosted, resp.Status)
	suite.True(postedAt.Equal(resp.PostedAt))
}

func (suite *HandlersTestSuite) TestPostJournalEntry_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"already posted", apperrors.NewAlreadyPostedError(5), http.StatusBadRequest, apperrors.CodeAlreadyPosted},
		{"voided", apperrors.NewEntryVoidedError(5), http.StatusBadRequest, apperrors.CodeEntryVoided},
		{"closed period", apperrors.NewFiscalPeriodClosedError(10), http.StatusBadRequest, apperrors.CodeFiscalPeriodClosed},
		{"in progress", apperrors.NewPostingInProgressError(5), http.StatusConflict, apperrors.CodePostingInProgress},
		{"transient storage", apperrors.NewStorageError("deadlock", nil, true), http.StatusServiceUnavailable, apperrors.CodeStorage},
		{"storage", apperrors.NewStorageError("disk full", nil, false), http.StatusInternalServerError, apperrors.CodeStorage},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.postService.On("PostJournalEntry", mock.Anything, testOrgID, int64(5), testUserID).
				Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/organizations/7/journal-entries/5/post", nil)

			suite.Equal(tc.status, w.Code)
			suite.Equal(tc.code, suite.errorBody(w).Error.Code)
		})
	}
}

func (suite *HandlersTestSuite) TestPostJournalEntry_UnknownErrorHidesCause() {
	suite.postService.On("PostJournalEntry", mock.Anything, testOrgID, int64(5), testUserID).
		Return(nil, io.ErrUnexpectedEOF).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/7/journal-entries/5/post", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.errorBody(w)
	suite.Equal(apperrors.CodeInternal, body.Error.Code)
	suite.NotContains(body.Error.Message, "EOF")
}

func (suite *HandlersTestSuite) TestVoidJournalEntry() {
	suite.entryService.On("VoidJournalEntry", mock.Anything, testOrgID, int64(5), testUserID).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/organizations/7/journal-entries/5/void", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestListGeneralLedger_DecodesCursor() {
	token := pagination.EncodeLedgerToken(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 42)
	next := pagination.EncodeLedgerToken(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), 60)
	suite.ledgerService.On("ListGeneralLedger", mock.Anything, testOrgID,
		mock.MatchedBy(func(f domain.LedgerFilter) bool {
			return f.AfterID == 42 && f.AfterDate != nil && f.AccountID != nil && *f.AccountID == 100 && f.Limit == 10
		})).Return([]domain.GeneralLedgerRow{{ID: 43}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/general-ledger?accountId=100&limit=10&nextToken="+token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListLedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlersTestSuite) TestListGeneralLedger_InvalidCursor() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/7/general-ledger?nextToken=%25%25", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledgerService.AssertNotCalled(suite.T(), "ListGeneralLedger")
}

func (suite *HandlersTestSuite) TestListAccountLedger() {
	suite.ledgerService.On("ListAccountLedger", mock.Anything, testOrgID, int64(100), int64(8), 50).
		Return([]domain.GeneralLedgerRow{{ID: 9, AccountID: 100}}, nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/accounts/100/ledger?nextToken="+pagination.EncodeIDToken(8), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "nextToken")
}

func (suite *HandlersTestSuite) TestListAccountBalances_RequiresPeriod() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/7/account-balances", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestVerifyLedger() {
	suite.ledgerService.On("VerifyLedger", mock.Anything, testOrgID).
		Return(&domain.LedgerVerification{OrganizationID: testOrgID, RowsChecked: 4, Discrepancies: []domain.LedgerDiscrepancy{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/ledger/verify", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"rowsChecked":4`)
}

func (suite *HandlersTestSuite) TestTrialBalance() {
	report := &domain.TrialBalanceReport{
		FiscalPeriod: domain.FiscalPeriod{ID: 10, Name: "2025-03"},
		BaseCurrency: "USD",
		IsBalanced:   true,
	}
	suite.reportService.On("TrialBalance", mock.Anything, testOrgID, int64(10)).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/reports/trial-balance?fiscalPeriodId=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(true, resp["isBalanced"])
	suite.Contains(resp, "generatedAt")
}

func (suite *HandlersTestSuite) TestExportTrialBalance() {
	suite.reportService.On("ExportTrialBalance", mock.Anything, testOrgID, int64(10), mock.Anything).Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/reports/trial-balance/export?fiscalPeriodId=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
	suite.Contains(w.Header().Get("Content-Disposition"), "trial-balance-7-10.xlsx")
	suite.Equal("PK-xlsx", w.Body.String())
}

func (suite *HandlersTestSuite) TestExportTrialBalance_ErrorIsJSON() {
	suite.reportService.On("ExportTrialBalance", mock.Anything, testOrgID, int64(10), mock.Anything).
		Return(apperrors.NewNotFoundError("Fiscal period 10 not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/organizations/7/reports/trial-balance/export?fiscalPeriodId=10", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Empty(w.Header().Get("Content-Disposition"))
}
