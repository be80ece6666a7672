// Package env описывает возможности окружения, которые явно передаются в usecase
// вместо обращения к глобальному состоянию: origin для сборки короткого URL,
// буфер обмена и канал уведомлений пользователя.
package env

import "github.com/avc-dev/shortener-frontend/internal/model"

//go:generate mockery --name Clipboard
//go:generate mockery --name Notifier

// OriginProvider возвращает origin, под которым доступны короткие ссылки
type OriginProvider interface {
	Origin() string
}

// Clipboard записывает текст в буфер обмена
type Clipboard interface {
	WriteText(text string) error
}

// Notifier показывает пользователю короткое уведомление
type Notifier interface {
	Notify(message string)
}

// StateListener получает каждое промежуточное состояние отправки
type StateListener interface {
	OnState(state model.UiState)
}

// StateListenerFunc позволяет использовать функцию как StateListener
type StateListenerFunc func(state model.UiState)

func (f StateListenerFunc) OnState(state model.UiState) {
	f(state)
}

// Environment собирает возможности окружения.
// Clipboard, Notifier и Listener могут быть nil, если представление их не использует.
type Environment struct {
	Origin    OriginProvider
	Clipboard Clipboard
	Notifier  Notifier
	Listener  StateListener
}
