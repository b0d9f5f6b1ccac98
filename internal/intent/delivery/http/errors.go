package http

import (
	"errors"
	"net/http"

	"intent-chatbot/internal/intent"
	pkgErrors "intent-chatbot/pkg/errors"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message is empty")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
