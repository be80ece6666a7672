package model

// UiState: состояние представления после очередного события.
// ShortenedURL и ErrorMessage никогда не заполнены одновременно.
type UiState struct {
	Loading      bool   `json:"loading"`
	ShortenedURL string `json:"shortened_url,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Idle сообщает, что отправок еще не было (или результат сброшен)
func (s UiState) Idle() bool {
	return !s.Loading && s.ShortenedURL == "" && s.ErrorMessage == ""
}

// Succeeded сообщает, что последняя отправка завершилась коротким URL
func (s UiState) Succeeded() bool {
	return !s.Loading && s.ShortenedURL != ""
}

// Failed сообщает, что последняя отправка завершилась ошибкой
func (s UiState) Failed() bool {
	return !s.Loading && s.ErrorMessage != ""
}

// Event: событие жизненного цикла отправки
type Event interface {
	event()
}

// SubmissionStarted: пользователь отправил форму
type SubmissionStarted struct{}

// SubmissionSucceeded: бэкенд вернул короткий код, URL уже собран
type SubmissionSucceeded struct {
	ShortenedURL string
}

// SubmissionFailed: попытка завершилась ошибкой, Message готов к показу
type SubmissionFailed struct {
	Message string
}

// InputChanged: пользователь изменил одно из полей формы
type InputChanged struct{}

func (SubmissionStarted) event()   {}
func (SubmissionSucceeded) event() {}
func (SubmissionFailed) event()    {}
func (InputChanged) event()        {}
