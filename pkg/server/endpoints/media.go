package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
)

// RegisterMediaEndpoints registers the media asset endpoints. Listing
// is public, changes are admin-only.
func RegisterMediaEndpoints(srv *server.Server) {
	r := srv.Router

	r.HandleFunc("/api/posts/{id:[0-9]+}/media", listMediaHandler(srv)).Methods("GET")

	admin := srv.Auth.Middleware
	r.Handle("/api/posts/{id:[0-9]+}/media", admin(addMediaHandler(srv))).Methods("POST")
	r.Handle("/api/media/{id:[0-9]+}", admin(deleteMediaHandler(srv))).Methods("DELETE")
}

func listMediaHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := loadPostByID(w, r, srv)
		if !ok {
			return
		}

		assets, err := srv.MediaStore.ListByPost(post.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list media assets")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"media": assets})
	}
}

type mediaRequest struct {
	AssetType  string `json:"asset_type" validate:"required,oneof=image video infographic"`
	FileURL    string `json:"file_url" validate:"required,max=500"`
	FileName   string `json:"file_name" validate:"max=200"`
	AltText    string `json:"alt_text" validate:"max=200"`
	Caption    string `json:"caption"`
	OrderIndex int    `json:"order_index"`
	IsFeatured bool   `json:"is_featured"`
}

func addMediaHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := loadPostByID(w, r, srv)
		if !ok {
			return
		}

		var req mediaRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		asset := &model.MediaAsset{
			PostID:     post.ID,
			AssetType:  req.AssetType,
			FileURL:    req.FileURL,
			FileName:   req.FileName,
			AltText:    req.AltText,
			Caption:    req.Caption,
			OrderIndex: req.OrderIndex,
			IsFeatured: req.IsFeatured,
		}
		if err := srv.MediaStore.Create(asset); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save media asset")
			return
		}
		respondWithJSON(w, http.StatusCreated, asset)
	}
}

func deleteMediaHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid media id")
			return
		}

		if err := srv.MediaStore.Delete(uint(id)); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to delete media asset")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]uint{"deleted": uint(id)})
	}
}
