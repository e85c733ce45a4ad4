package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorPayload is the body of every failed request.
type ErrorPayload struct {
	Error    string `json:"error"`
	RawError string `json:"rawError,omitempty"`
}

// JSONResponse sends payload as JSON with the given status
func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, ErrorPayload{Error: message})
}
