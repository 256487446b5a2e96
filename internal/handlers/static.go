package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Root answers the bare root path so load balancers and humans can see the
// backend is up. When a static frontend is mounted it takes over "/".
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Doctor Portal Backend is running"))
}

// SPAHandler serves the built frontend from dir. Requests for files that
// exist are served as-is; anything else falls back to index.html so
// client-side routes resolve after a hard refresh.
func SPAHandler(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(strings.TrimPrefix(r.URL.Path, "/")))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
