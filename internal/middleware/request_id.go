package middleware

import (
	"net/http"
	"regexp"

	"github.com/avc-dev/shortener-frontend/internal/reqid"
)

// validRequestID ограничивает идентификаторы, принимаемые от клиента
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID добавляет идентификатор запроса в контекст и в заголовок ответа.
// Корректный X-Request-ID от клиента сохраняется, иначе генерируется новый UUID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(reqid.Header)
		if !validRequestID.MatchString(id) {
			id = reqid.New()
		}

		w.Header().Set(reqid.Header, id)

		next.ServeHTTP(w, r.WithContext(reqid.NewContext(r.Context(), id)))
	})
}
