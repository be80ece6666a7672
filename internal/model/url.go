package model

// Code: короткий код, выданный бэкендом
type Code string

// SubmissionInput представляет пользовательский ввод одной отправки формы
type SubmissionInput struct {
	OriginalURL string `json:"original_url"`
	CustomCode  string `json:"custom_short_code"`
}

// RequestPayload представляет тело запроса POST /api/shorten/.
// Ключ short_code присутствует только если пользователь указал собственный код.
type RequestPayload struct {
	OriginalURL string  `json:"original_url"`
	ShortCode   *string `json:"short_code,omitempty"`
}

// HasShortCode сообщает, запрошен ли пользовательский короткий код
func (p RequestPayload) HasShortCode() bool {
	return p.ShortCode != nil
}

// ShortenResponse представляет успешный ответ бэкенда (200 для существующей записи, 201 для новой)
type ShortenResponse struct {
	ID          int64  `json:"id,omitempty"`
	OriginalURL string `json:"original_url,omitempty"`
	ShortCode   Code   `json:"short_code"`
	CreatedAt   string `json:"created_at,omitempty"`
}
