package handler

import (
	"context"
	"embed"
	"html/template"

	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:generate mockery --name URLUsecase

// URLUsecase определяет интерфейс сценария отправки формы
type URLUsecase interface {
	Submit(ctx context.Context, current model.UiState, in model.SubmissionInput) model.UiState
}

// Handler обрабатывает HTTP запросы фронтенда сокращателя
type Handler struct {
	usecase  URLUsecase
	logger   *zap.Logger
	validate *validator.Validate
	page     *template.Template
}

// New создает новый экземпляр Handler
func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase:  usecase,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		page:     template.Must(template.ParseFS(templatesFS, "templates/index.html")),
	}
}
