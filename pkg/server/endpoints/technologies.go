package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// RegisterTechnologiesEndpoints registers the public technology
// endpoints and the admin upsert.
func RegisterTechnologiesEndpoints(srv *server.Server) {
	r := srv.Router
	r.HandleFunc("/api/technologies", listTechnologiesHandler(srv)).Methods("GET")
	r.HandleFunc("/api/technologies/{id:[0-9]+}", getTechnologyHandler(srv)).Methods("GET")

	admin := srv.Auth.Middleware
	r.Handle("/api/technologies", admin(upsertTechnologyHandler(srv))).Methods("POST")
}

func listTechnologiesHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var categories []string
		if raw := r.URL.Query().Get("category"); raw != "" {
			categories = strings.Split(raw, ",")
		}

		technologies, err := srv.TechnologiesStore.ListByCategories(categories)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list technologies")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"technologies": technologies})
	}
}

func getTechnologyHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid technology id")
			return
		}

		technology, err := srv.TechnologiesStore.GetByID(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrTechnologyNotFound) {
				respondWithError(w, http.StatusNotFound, "Technology not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to load technology")
			return
		}

		posts, err := srv.PostsStore.List(store.PostFilter{
			Status:       model.PostStatusPublished,
			TechnologyID: technology.ID,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load technology posts")
			return
		}

		summaries := make([]postSummary, 0, len(posts.Posts))
		for _, post := range posts.Posts {
			summaries = append(summaries, summarize(post))
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"technology": technology,
			"posts":      summaries,
			"post_count": posts.Total,
		})
	}
}

type technologyRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=50"`
	Description string `json:"description"`
}

func upsertTechnologyHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req technologyRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		technology := &model.Technology{
			Name:        req.Name,
			Category:    req.Category,
			Description: req.Description,
		}
		if err := srv.TechnologiesStore.Upsert(technology); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save technology")
			return
		}
		respondWithJSON(w, http.StatusCreated, technology)
	}
}
