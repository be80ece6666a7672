package handler

import "net/http"

// Ping сообщает, что фронтенд запущен. Доступность бэкенда не проверяется.
func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
