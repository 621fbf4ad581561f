package handlers

import (
	"errors"
	"net/http"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"

	"github.com/gin-gonic/gin"
)

// respondSuccess writes a success envelope with the given status and payload.
func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, dto.SuccessResult(data))
}

// respondError writes the envelope for a failed operation, deriving the HTTP
// status from the error kind rather than from the message text. Warning-grade
// rejections get a 409 with a warning envelope so the client can render them
// less severely; everything else is an error envelope.
func respondError(c *gin.Context, err error) {
	if apperrors.IsWarning(err) {
		c.JSON(http.StatusConflict, dto.WarningResult(publicMessage(err)))
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrRuleViolation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, dto.ErrorResult(publicMessage(err)))
}

// respondBindingError writes a validation envelope for a request that failed
// gin binding.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResult("invalid request format: "+err.Error()))
}

// publicMessage returns the client-facing message for an error. Persistence
// failures keep their wrapped cause out of the response body.
func publicMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.KindPersistence {
			return "an unexpected error occurred"
		}
		return appErr.Message
	}
	return "an unexpected error occurred"
}
