package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

const msgInternal = "Internal error"

func JSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

func OK(w http.ResponseWriter, r *http.Request, payload any) {
	JSON(w, r, http.StatusOK, payload)
}

func Success(w http.ResponseWriter, r *http.Request) {
	OK(w, r, dto.SuccessResponse{Success: true})
}

func Message(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// Error maps a service error onto a status code and a client-facing message.
// Anything unclassified is logged and hidden behind a generic 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := classify(err)
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
	}

	Message(w, r, status, msg)
}

func classify(err error) (int, string) {
	var fe *model.FieldError

	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest, fe.Error() // 400
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error() // 400
	case errors.Is(err, model.ErrInvalidID):
		return http.StatusBadRequest, "Invalid id" // 400
	case errors.Is(err, model.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already exists" // 400
	case errors.Is(err, model.ErrWrongPassword):
		return http.StatusBadRequest, "Wrong current password" // 400
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, "Login required" // 401
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password" // 401
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, "Forbidden" // 403
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "Not found" // 404
	default:
		return http.StatusInternalServerError, msgInternal // 500
	}
}

// Decode reads a JSON request body into dst. A malformed body is reported
// as a validation error.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var fe *model.FieldError
		if errors.As(err, &fe) {
			return fe
		}
		return model.Invalid("body", "must be valid JSON")
	}
	return nil
}
