package endpoints

import (
	"net/http"
	"strconv"

	"github.com/CryptoTanAI/TechBlog/pkg/server"
)

// RegisterAnalyticsEndpoints registers the admin analytics endpoints.
func RegisterAnalyticsEndpoints(srv *server.Server) {
	admin := srv.Auth.Middleware
	srv.Router.Handle("/api/analytics/overview", admin(analyticsOverviewHandler(srv))).Methods("GET")
}

func analyticsOverviewHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := srv.AnalyticsStore.Overview()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load analytics")
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("top"))
		topPosts, err := srv.AnalyticsStore.TopPosts(limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load analytics")
			return
		}

		platformCounts, err := srv.SharesStore.CountByPlatform()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load analytics")
			return
		}

		subscribers, err := srv.SubscribersStore.CountActive()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load analytics")
			return
		}

		topSummaries := make([]postSummary, 0, len(topPosts))
		for _, post := range topPosts {
			topSummaries = append(topSummaries, summarize(post))
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"overview":           overview,
			"top_posts":          topSummaries,
			"shares_by_platform": platformCounts,
			"subscribers":        subscribers,
		})
	}
}
