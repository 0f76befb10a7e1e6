package endpoints

import (
	"net/http"
	"os"

	"github.com/CryptoTanAI/TechBlog/pkg/server"
)

// Version is the reported server version. Overridable at runtime with
// TECHSOUTH_VERSION_DISPLAY.
const Version = "1.0.0"

// RegisterStatusEndpoints registers the status and health endpoints.
// No auth required.
func RegisterStatusEndpoints(srv *server.Server) {
	srv.Router.HandleFunc("/", statusHandler(srv)).Methods("GET")
	srv.Router.HandleFunc("/health", healthHandler(srv)).Methods("GET")
	srv.Router.HandleFunc("/api/status", statusHandler(srv)).Methods("GET")
}

func statusHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("TECHSOUTH_VERSION_DISPLAY")
		if version == "" {
			version = Version
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"service": "techsouth",
			"status":  "ok",
			"version": version,
		})
	}
}

func healthHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := srv.HealthStore.Ping(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "error",
				"error":  "database connectivity check failed",
			})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
