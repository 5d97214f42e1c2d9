package handlers

import (
	"net/http"

	"socialfeed/internal/realtime"
)

func (h *Handlers) WS(w http.ResponseWriter, r *http.Request) {
	realtime.ServeWS(h.Hub, w, r)
}

func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Social feed backend is running"))
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
