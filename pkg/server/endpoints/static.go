package endpoints

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/CryptoTanAI/TechBlog/pkg/server"
)

// DefaultStaticDir is where the frontend bundle is looked for when
// TECHSOUTH_STATIC_DIR is unset.
const DefaultStaticDir = "./static"

// RegisterStaticFiles serves the frontend bundle. Unknown paths fall
// back to index.html so client-side routing works. Registered last so
// API routes take precedence.
func RegisterStaticFiles(srv *server.Server) {
	dir := os.Getenv("TECHSOUTH_STATIC_DIR")
	if dir == "" {
		dir = DefaultStaticDir
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		// No bundle deployed; the API is still fully usable
		return
	}

	fileServer := http.FileServer(http.Dir(dir))
	srv.Router.PathPrefix("/").Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		fileServer.ServeHTTP(w, r)
	})).Methods("GET")
}
