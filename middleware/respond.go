package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/blogem/welfare-admin/apperrors"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError writes err as a JSON error response. Server faults carry only a stable message.
func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.Wrap(err)
	WriteJSON(w, appErr.HTTPStatus, ErrorBody{
		Error:   errorCode(appErr.Type),
		Message: appErr.PublicMessage(),
	})
}

func errorCode(t apperrors.ErrorType) string {
	switch t {
	case apperrors.ErrInvalidToken, apperrors.ErrUnauthenticated:
		return "unauthenticated"
	default:
		return strings.ToLower(string(t))
	}
}

// Serve adapts an Operation for routes that are not audited, such as plain reads
func Serve(op Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := op(w, r)
		if err != nil {
			WriteError(w, err)
			return
		}
		if result == nil {
			result = &Result{}
		}
		if result.Status == 0 {
			result.Status = http.StatusOK
		}
		WriteJSON(w, result.Status, result.Body)
	}
}
