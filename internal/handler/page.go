package handler

import (
	"bytes"
	"net/http"

	"github.com/avc-dev/shortener-frontend/internal/model"
	"go.uber.org/zap"
)

// pageData: данные для шаблона страницы
type pageData struct {
	Form      ShortenForm
	FormError string
	State     model.UiState
}

// Index отображает пустую форму
func (h *Handler) Index(w http.ResponseWriter, req *http.Request) {
	h.render(w, req, http.StatusOK, pageData{})
}

// Submit обрабатывает отправку HTML формы и отображает итоговое состояние
func (h *Handler) Submit(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		h.logger.Warn("failed to parse form",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	form := ShortenForm{
		OriginalURL:     req.PostForm.Get(fieldOriginalURL),
		CustomShortCode: req.PostForm.Get(fieldCustomShortCode),
	}

	if msg := h.validateForm(form); msg != "" {
		h.render(w, req, http.StatusUnprocessableEntity, pageData{Form: form, FormError: msg})
		return
	}

	state := h.usecase.Submit(req.Context(), model.UiState{}, form.input())

	h.render(w, req, http.StatusOK, pageData{Form: form, State: state})
}

func (h *Handler) render(w http.ResponseWriter, req *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.logger.Error("failed to render page",
			zap.Error(err),
			zap.String("uri", req.RequestURI),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
