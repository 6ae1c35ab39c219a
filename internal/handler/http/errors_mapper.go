package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

type errorKind struct {
	target error
	status int
	reason string
}

// errorKinds is checked in order; the first match wins.
var errorKinds = []errorKind{
	{service.ErrValidation, http.StatusBadRequest, app.ReasonValidationError},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.ReasonInvalidCredentials},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.ReasonUnauthenticated},
	{service.ErrForbidden, http.StatusForbidden, app.ReasonForbidden},
	{service.ErrNotFound, http.StatusNotFound, app.ReasonNotFound},
	{errInvalidPostID, http.StatusNotFound, app.ReasonNotFound},
	{store.ErrPostNotFound, http.StatusNotFound, app.ReasonNotFound},
	{service.ErrConflict, http.StatusBadRequest, app.ReasonConflict},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.ReasonConflict},
}

func statusFromError(err error) (int, string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind.status, kind.reason
		}
	}
	return http.StatusInternalServerError, app.ReasonInternalError
}

// writeError answers with the status and reason err maps to. Only
// validation failures carry a message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, reason := statusFromError(err)
	body := models.ErrorResponse{Error: reason}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		body.Message = validationErr.Message()
	}

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "writeError").Msg("request failed")
	}

	_, _ = utils.WriteJSON(w, body, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, service.ErrNotFound)
}
