package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// envelope is the uniform JSON wrapper every response uses, middleware
// rejections included.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondSuccess(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, envelope{Success: true, Message: message, Data: data})
}

// respondError writes a failure envelope. The message is always safe to show
// the caller; raw dependency errors are logged at the call site instead.
func respondError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, envelope{Success: false, Message: message, Error: message})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling JSON response: %v", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"internal server error","error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
