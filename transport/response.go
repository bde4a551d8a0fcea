package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/course-platform/utils/errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

// writeError maps CustomError to its HTTP code; anything else is a 500 with
// a generic message so raw store errors never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	if cerr, ok := err.(errors.CustomError); ok {
		writeJSON(w, cerr.ErrorHTTPCode(), errorResponse{Error: cerr.Error(), Code: cerr.ErrorCode()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
