package httpx

import (
	"errors"
	"net/http"

	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

// RespondError maps domain errors to HTTP responses. Validation and
// business-rule failures carry their own descriptive text; unexpected
// failures are reduced to a generic message so storage details never reach
// the client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrDuplicate):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, shared.ErrIdempotencyConflict):
		Error(w, http.StatusConflict, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "erro interno do servidor")
	}
}
