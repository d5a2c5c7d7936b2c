// Package web отдаёт браузерный клиент, встроенный в бинарник.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/index.html
var content embed.FS

// Handler отдаёт index.html. Страница ходит в API того же origin.
func Handler() http.Handler {
	page, err := fs.ReadFile(content, "static/index.html")
	if err != nil {
		panic("web: embedded index.html is missing: " + err.Error())
	}
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache, must-revalidate")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	})
}
