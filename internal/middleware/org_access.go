package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OrganizationAccess resolves the :org_id path parameter and rejects requests for
// organizations missing from the token's organization list.
func OrganizationAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		orgID, err := strconv.ParseInt(c.Param("org_id"), 10, 64)
		if err != nil || orgID <= 0 {
			abortWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid organization ID")
			return
		}

		allowed, _ := c.Request.Context().Value(orgIDsKey).([]int64)
		if !slices.Contains(allowed, orgID) {
			logger.Warn("Organization access denied", slog.Int64("organization_id", orgID))
			abortWithError(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this organization")
			return
		}

		c.Set(string(organizationIDKey), orgID)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), logger.With(slog.Int64("organization_id", orgID))))
		c.Next()
	}
}
