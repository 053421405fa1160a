package http

import (
	"encoding/json"
	"net/http"

	"github.com/loginapp/authserver/models"
)

// writeJSON serialises v into the response body with the given status code.
// Encoding errors at this point cannot be reported to the client anymore;
// they surface in the access log as a truncated response size.
func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends the JSON error envelope shared by all endpoints.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, models.ErrorResponse{Error: message}, status)
}
