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

// RegisterCountriesEndpoints registers the public country endpoints
// and the admin upsert.
func RegisterCountriesEndpoints(srv *server.Server) {
	r := srv.Router
	r.HandleFunc("/api/countries", listCountriesHandler(srv)).Methods("GET")
	r.HandleFunc("/api/countries/{id:[0-9]+}", getCountryByIDHandler(srv)).Methods("GET")
	r.HandleFunc("/api/countries/{code}", getCountryHandler(srv)).Methods("GET")
	r.HandleFunc("/api/regions", listRegionsHandler(srv)).Methods("GET")

	admin := srv.Auth.Middleware
	r.Handle("/api/countries", admin(upsertCountryHandler(srv))).Methods("POST")
}

func listCountriesHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region := r.URL.Query().Get("region")

		list := srv.CountriesStore.List
		if region != "" {
			list = func() ([]model.Country, error) {
				return srv.CountriesStore.ListByRegion(region)
			}
		}
		countries, err := list()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list countries")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"countries": countries})
	}
}

func getCountryHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(mux.Vars(r)["code"])

		country, err := srv.CountriesStore.GetByCode(code)
		if err != nil {
			if errors.Is(err, store.ErrCountryNotFound) {
				respondWithError(w, http.StatusNotFound, "Country not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to load country")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"country":            country,
			"development_status": country.DevelopmentStatus(),
			"digital_readiness":  country.DigitalReadiness(),
		})
	}
}

func getCountryByIDHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid country id")
			return
		}

		country, err := srv.CountriesStore.GetByID(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrCountryNotFound) {
				respondWithError(w, http.StatusNotFound, "Country not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to load country")
			return
		}

		posts, err := srv.PostsStore.List(store.PostFilter{
			Status:    model.PostStatusPublished,
			CountryID: country.ID,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load country posts")
			return
		}

		summaries := make([]postSummary, 0, len(posts.Posts))
		for _, post := range posts.Posts {
			summaries = append(summaries, summarize(post))
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"country":            country,
			"development_status": country.DevelopmentStatus(),
			"digital_readiness":  country.DigitalReadiness(),
			"posts":              summaries,
			"post_count":         posts.Total,
		})
	}
}

type countryRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Code         string  `json:"code" validate:"required,len=3,alpha"`
	Region       string  `json:"region" validate:"required,max=50"`
	FlagURL      string  `json:"flag_url"`
	Population   int64   `json:"population"`
	GDPUSD       int64   `json:"gdp_usd"`
	GDPPerCapita float64 `json:"gdp_per_capita"`
}

func upsertCountryHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req countryRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		country := &model.Country{
			Name:         req.Name,
			Code:         strings.ToUpper(req.Code),
			Region:       req.Region,
			FlagURL:      req.FlagURL,
			Population:   req.Population,
			GDPUSD:       req.GDPUSD,
			GDPPerCapita: req.GDPPerCapita,
		}
		if err := srv.CountriesStore.Upsert(country); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save country")
			return
		}
		respondWithJSON(w, http.StatusCreated, country)
	}
}

func listRegionsHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regions, err := srv.CountriesStore.Regions()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list regions")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"regions": regions})
	}
}
