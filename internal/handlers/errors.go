package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/dto"
	"github.com/SscSPs/org_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError writes the JSON error envelope for err. Application errors keep their
// code and status; anything else is reported as an internal error without its cause.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error("Unhandled error", slog.String("error", err.Error()))
		appErr = apperrors.NewInternalError("Internal server error", err)
	}

	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	message := appErr.Message
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("code", appErr.Code), slog.String("error", appErr.Error()))
		if errors.Is(appErr, apperrors.ErrInternal) {
			message = "Internal server error"
		}
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Success: false,
		Error: dto.ErrorBody{
			Code:    appErr.Code,
			Message: message,
			Details: appErr.Details,
		},
	})
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))

	appErr := apperrors.NewValidationError("Invalid request: " + err.Error())
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		appErr = apperrors.NewValidationError("Request validation failed")
		fields := make(map[string]any, len(verrs))
		for _, fe := range verrs {
			fields[fe.Namespace()] = fe.Tag()
		}
		appErr.WithDetail("fields", fields)
	}
	respondError(c, appErr)
}
