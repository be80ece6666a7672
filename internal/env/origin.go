package env

import "strings"

// StaticOrigin: origin, заданный конфигурацией
type StaticOrigin string

func (o StaticOrigin) Origin() string {
	return strings.TrimSuffix(string(o), "/")
}

// ShortenedURL собирает отображаемый адрес вида <origin>/<code>
func ShortenedURL(origin OriginProvider, code string) string {
	return strings.TrimSuffix(origin.Origin(), "/") + "/" + code
}
