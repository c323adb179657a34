package handlers

import (
	"strconv"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Invalid " + name)
	}
	return id, nil
}

// requestScope returns the organization checked by OrganizationAccess and the
// authenticated user.
func requestScope(c *gin.Context) (int64, string, error) {
	orgID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		return 0, "", apperrors.NewForbiddenError("Organization not resolved")
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return 0, "", apperrors.NewForbiddenError("User not resolved")
	}
	return orgID, userID, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperrors.NewValidationError("Dates must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
