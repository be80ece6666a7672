// Command frontend запускает HTTP фронтенд сокращателя ссылок: HTML форму,
// JSON эндпоинт /api/submit и метрики Prometheus.
package main

import (
	"log"

	"github.com/avc-dev/shortener-frontend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
