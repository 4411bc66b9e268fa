package handler

import (
	"encoding/json"
	"net/http"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RegisterEnvelope wraps a successful registration.
type RegisterEnvelope struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// TokenEnvelope wraps login responses.
type TokenEnvelope struct {
	Token string `json:"token"`
}

// DeleteEnvelope wraps account deletion responses.
type DeleteEnvelope struct {
	UserIdx int64  `json:"userIdx"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
