// Package reqid связывает отправку с идентификатором запроса для логов и заголовка X-Request-ID.
package reqid

import (
	"context"

	"github.com/google/uuid"
)

// Header: заголовок, в котором идентификатор передается бэкенду и возвращается клиенту
const Header = "X-Request-ID"

type contextKey struct{}

// New генерирует новый идентификатор
func New() string {
	return uuid.NewString()
}

// NewContext возвращает контекст с идентификатором запроса
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext извлекает идентификатор запроса из контекста
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

// FromContextOrNew возвращает идентификатор из контекста или генерирует новый
func FromContextOrNew(ctx context.Context) string {
	if id, ok := FromContext(ctx); ok {
		return id
	}
	return New()
}
