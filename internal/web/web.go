// Package web serves the landing page that drives the analyze API from a browser.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html static
var assets embed.FS

// RegisterRoutes serves the landing document at / and its assets under /static/.
func RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, assets, "index.html")
	})
	mux.Handle("GET /static/", http.FileServerFS(assets))
}
