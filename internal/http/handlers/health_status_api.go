package handlers

import (
	"encoding/json"
	"net/http"
)

type StatusHandler struct {
}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

func (h *StatusHandler) Health(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "api-dwh"}); err != nil {
		http.Error(w, "failed to write response", http.StatusInternalServerError)
	}
}
