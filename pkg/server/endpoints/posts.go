package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/CryptoTanAI/TechBlog/pkg/audit"
	"github.com/CryptoTanAI/TechBlog/pkg/markdown"
	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
	"github.com/CryptoTanAI/TechBlog/pkg/server/middleware"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
	"github.com/CryptoTanAI/TechBlog/pkg/utils"
)

// RegisterPostsEndpoints registers the public read endpoints and the
// admin write endpoints for posts.
func RegisterPostsEndpoints(srv *server.Server) {
	r := srv.Router

	r.HandleFunc("/api/posts", listPostsHandler(srv)).Methods("GET")
	r.HandleFunc("/api/posts/search", searchPostsHandler(srv)).Methods("GET")
	r.HandleFunc("/api/posts/slug/{slug}", getPostHandler(srv)).Methods("GET")
	r.HandleFunc("/api/posts/{id:[0-9]+}", getPostByIDHandler(srv)).Methods("GET")
	r.HandleFunc("/api/posts/{slug}", getPostHandler(srv)).Methods("GET")

	admin := srv.Auth.Middleware
	r.Handle("/api/posts", admin(createPostHandler(srv))).Methods("POST")
	r.Handle("/api/posts/{id:[0-9]+}", admin(updatePostHandler(srv))).Methods("PUT")
	r.Handle("/api/posts/{id:[0-9]+}", admin(deletePostHandler(srv))).Methods("DELETE")
	r.Handle("/api/posts/{id:[0-9]+}/status", admin(setPostStatusHandler(srv))).Methods("PUT")
}

type postSummary struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Country     string     `json:"country,omitempty"`
	Technology  string     `json:"technology,omitempty"`
	Tags        []string   `json:"tags"`
	Status      string     `json:"status"`
	ReadingTime int        `json:"reading_time_minutes"`
	ViewCount   int64      `json:"view_count"`
	ShareCount  int64      `json:"share_count"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func summarize(post model.Post) postSummary {
	s := postSummary{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		Tags:        post.TagList(),
		Status:      post.Status,
		ReadingTime: post.ReadingTime,
		ViewCount:   post.ViewCount,
		ShareCount:  post.ShareCount,
		PublishedAt: post.PublishedAt,
	}
	if post.Country != nil {
		s.Country = post.Country.Name
	}
	if post.Technology != nil {
		s.Technology = post.Technology.Name
	}
	return s
}

func listPostsHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		perPage, _ := strconv.Atoi(q.Get("per_page"))
		countryID, _ := strconv.Atoi(q.Get("country_id"))
		technologyID, _ := strconv.Atoi(q.Get("technology_id"))

		// Anonymous callers only see published posts. The admin
		// dashboard passes a bearer token to filter by other statuses.
		status := model.PostStatusPublished
		if requested := q.Get("status"); requested != "" && bearerUsername(srv, r) != "" {
			status = requested
		}

		result, err := srv.PostsStore.List(store.PostFilter{
			Status:       status,
			CountryID:    uint(countryID),
			TechnologyID: uint(technologyID),
			Search:       q.Get("q"),
			Page:         page,
			PerPage:      perPage,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list posts")
			return
		}

		summaries := make([]postSummary, 0, len(result.Posts))
		for _, post := range result.Posts {
			summaries = append(summaries, summarize(post))
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"posts":       summaries,
			"total":       result.Total,
			"page":        result.Page,
			"per_page":    result.PerPage,
			"total_pages": result.TotalPages,
		})
	}
}

func searchPostsHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query := q.Get("q")
		if query == "" {
			respondWithError(w, http.StatusBadRequest, "Missing search query")
			return
		}
		page, _ := strconv.Atoi(q.Get("page"))
		perPage, _ := strconv.Atoi(q.Get("per_page"))

		result, err := srv.PostsStore.List(store.PostFilter{
			Status:  model.PostStatusPublished,
			Search:  query,
			Page:    page,
			PerPage: perPage,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Search failed")
			return
		}

		summaries := make([]postSummary, 0, len(result.Posts))
		for _, post := range result.Posts {
			summaries = append(summaries, summarize(post))
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"query":       query,
			"posts":       summaries,
			"total":       result.Total,
			"page":        result.Page,
			"per_page":    result.PerPage,
			"total_pages": result.TotalPages,
		})
	}
}

func getPostByIDHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := loadPostByID(w, r, srv)
		if !ok {
			return
		}
		// Unpublished posts are only visible with a valid bearer token
		if !post.IsPublished() && bearerUsername(srv, r) == "" {
			respondWithError(w, http.StatusNotFound, "Post not found")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"post": post,
			"tags": post.TagList(),
		})
	}
}

func getPostHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := mux.Vars(r)["slug"]

		post, err := srv.PostsStore.GetBySlug(slug)
		if err != nil {
			if errors.Is(err, store.ErrPostNotFound) {
				respondWithError(w, http.StatusNotFound, "Post not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to load post")
			return
		}
		if !post.IsPublished() {
			respondWithError(w, http.StatusNotFound, "Post not found")
			return
		}

		_ = srv.PostsStore.IncrementViewCount(post.ID)
		post.ViewCount++

		response := map[string]interface{}{
			"post": post,
			"tags": post.TagList(),
		}
		if r.URL.Query().Get("format") == "html" {
			html, err := markdown.Render(post.Content)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to render post")
				return
			}
			response["content_html"] = html
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

type postRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Content      string   `json:"content" validate:"required"`
	Excerpt      string   `json:"excerpt"`
	CountryID    uint     `json:"country_id" validate:"required"`
	TechnologyID uint     `json:"technology_id" validate:"required"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft published scheduled"`
	ScheduledFor string   `json:"scheduled_for"`
}

func createPostHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		slug := utils.Slugify(req.Title)
		if taken, err := srv.PostsStore.SlugExists(slug); err == nil && taken {
			slug, _ = utils.UniqueSlug(slug)
		}

		post := &model.Post{
			Title:        req.Title,
			Slug:         slug,
			Content:      req.Content,
			Excerpt:      req.Excerpt,
			CountryID:    req.CountryID,
			TechnologyID: req.TechnologyID,
			Status:       model.PostStatusDraft,
			WordCount:    utils.WordCount(req.Content),
			ReadingTime:  utils.ReadingTime(req.Content),
		}
		post.SetTags(req.Tags)
		applyStatus(post, req, time.Now().UTC())

		if err := srv.PostsStore.Create(post); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create post")
			return
		}

		audit.Log(audit.PublishEvent{
			Username: middleware.UsernameFromContext(r.Context()),
			PostSlug: post.Slug,
			Status:   post.Status,
		})
		respondWithJSON(w, http.StatusCreated, post)
	}
}

func updatePostHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := loadPostByID(w, r, srv)
		if !ok {
			return
		}

		var req postRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		post.Title = req.Title
		post.Content = req.Content
		post.Excerpt = req.Excerpt
		post.CountryID = req.CountryID
		post.TechnologyID = req.TechnologyID
		post.WordCount = utils.WordCount(req.Content)
		post.ReadingTime = utils.ReadingTime(req.Content)
		post.SetTags(req.Tags)
		applyStatus(post, req, time.Now().UTC())

		if err := srv.PostsStore.Update(post); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update post")
			return
		}
		respondWithJSON(w, http.StatusOK, post)
	}
}

func deletePostHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := loadPostByID(w, r, srv)
		if !ok {
			return
		}

		if err := srv.PostsStore.Delete(post.ID); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to delete post")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"deleted": post.Slug})
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published scheduled"`
}

func setPostStatusHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := loadPostByID(w, r, srv)
		if !ok {
			return
		}

		var req statusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		now := time.Now().UTC()
		post.Status = req.Status
		if req.Status == model.PostStatusPublished && post.PublishedAt == nil {
			post.PublishedAt = &now
		}

		if err := srv.PostsStore.Update(post); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update post")
			return
		}

		audit.Log(audit.PublishEvent{
			Username: middleware.UsernameFromContext(r.Context()),
			PostSlug: post.Slug,
			Status:   post.Status,
		})
		respondWithJSON(w, http.StatusOK, post)
	}
}

// bearerUsername validates an optional bearer token on a public route.
// Returns "" for anonymous callers.
func bearerUsername(srv *server.Server, r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		return ""
	}
	username, err := srv.Auth.ParseToken(authHeader[len(prefix):])
	if err != nil {
		return ""
	}
	return username
}

func loadPostByID(w http.ResponseWriter, r *http.Request, srv *server.Server) (*model.Post, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid post id")
		return nil, false
	}
	post, err := srv.PostsStore.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondWithError(w, http.StatusNotFound, "Post not found")
			return nil, false
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load post")
		return nil, false
	}
	return post, true
}

func applyStatus(post *model.Post, req postRequest, now time.Time) {
	switch req.Status {
	case model.PostStatusPublished:
		post.Status = model.PostStatusPublished
		if post.PublishedAt == nil {
			post.PublishedAt = &now
		}
	case model.PostStatusScheduled:
		post.Status = model.PostStatusScheduled
		if at, err := time.Parse(time.RFC3339, req.ScheduledFor); err == nil {
			post.ScheduledFor = &at
		}
	case model.PostStatusDraft:
		post.Status = model.PostStatusDraft
	}
}
