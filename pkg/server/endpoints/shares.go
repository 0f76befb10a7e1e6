package endpoints

import (
	"net/http"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
)

// RegisterSharesEndpoints registers the admin social share endpoints.
func RegisterSharesEndpoints(srv *server.Server) {
	admin := srv.Auth.Middleware
	r := srv.Router

	r.Handle("/api/posts/{id:[0-9]+}/share", admin(schedulePostSharesHandler(srv))).Methods("POST")
	r.Handle("/api/posts/{id:[0-9]+}/shares", admin(listPostSharesHandler(srv))).Methods("GET")
}

func schedulePostSharesHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := loadPostByID(w, r, srv)
		if !ok {
			return
		}
		if post.Status != model.PostStatusPublished {
			respondWithError(w, http.StatusConflict, "Only published posts can be shared")
			return
		}

		shares, err := srv.Publisher.SchedulePost(post, time.Now().UTC())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to schedule shares")
			return
		}
		respondWithJSON(w, http.StatusCreated, map[string]interface{}{"shares": shares})
	}
}

func listPostSharesHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := loadPostByID(w, r, srv)
		if !ok {
			return
		}

		shares, err := srv.SharesStore.ListByPost(post.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list shares")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"shares": shares})
	}
}
