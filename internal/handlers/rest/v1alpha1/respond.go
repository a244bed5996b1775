package v1alpha1

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError renders err with the HTTP status of its code. Internal details
// of unexpected errors are logged, not returned.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	resp := ErrorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code.String(),
			"error", err)
	}

	writeJSON(w, status, resp)
}

// decodeJSON reads a JSON body into dst. Any failure is InvalidArgument.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return errors.InvalidArgument("request body is required")
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "request body is not valid JSON")
	}
	if dec.More() {
		return errors.InvalidArgument("request body must contain a single JSON value")
	}
	return nil
}
