package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortener-frontend/internal/model"
	"go.uber.org/zap"
)

// ErrorResponse: ответ на некорректный запрос
type ErrorResponse struct {
	Error string `json:"error"`
}

// SubmitJSON обрабатывает POST /api/submit и возвращает итоговый UiState в JSON
func (h *Handler) SubmitJSON(w http.ResponseWriter, req *http.Request) {
	var form ShortenForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return
	}

	if msg := h.validateForm(form); msg != "" {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: msg})
		return
	}

	state := h.usecase.Submit(req.Context(), model.UiState{}, form.input())

	writeJSON(w, http.StatusOK, state)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
