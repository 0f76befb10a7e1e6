package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/audit"
	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
	"github.com/CryptoTanAI/TechBlog/pkg/server/middleware"
)

// RegisterAutomationEndpoints registers the admin automation control
// endpoints.
func RegisterAutomationEndpoints(srv *server.Server) {
	admin := srv.Auth.Middleware
	r := srv.Router

	r.Handle("/api/automation/status", admin(automationStatusHandler(srv))).Methods("GET")
	r.Handle("/api/automation/start", admin(automationStartHandler(srv))).Methods("POST")
	r.Handle("/api/automation/stop", admin(automationStopHandler(srv))).Methods("POST")
	r.Handle("/api/automation/config", admin(automationConfigHandler(srv))).Methods("GET")
	r.Handle("/api/automation/config", admin(automationSetConfigHandler(srv))).Methods("POST", "PUT")
	r.Handle("/api/automation/generate", admin(automationGenerateHandler(srv))).Methods("POST")
	r.Handle("/api/automation/preview", admin(automationPreviewHandler(srv))).Methods("POST")
	r.Handle("/api/automation/schedule", admin(automationScheduleHandler(srv))).Methods("GET")
	r.Handle("/api/automation/analytics", admin(automationAnalyticsHandler(srv))).Methods("GET")
	r.Handle("/api/automation/logs", admin(automationLogsHandler(srv))).Methods("GET")
}

func automationStatusHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, srv.Scheduler.Status())
	}
}

func automationStartHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := srv.Scheduler.Start(); err != nil {
			respondWithError(w, http.StatusConflict, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, srv.Scheduler.Status())
	}
}

func automationStopHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := srv.Scheduler.Stop(); err != nil {
			respondWithError(w, http.StatusConflict, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, srv.Scheduler.Status())
	}
}

func automationConfigHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := srv.SettingsStore.List()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load settings")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"settings": settings})
	}
}

type configRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// knownSettingKeys guards against typo'd keys silently creating dead
// configuration.
var knownSettingKeys = map[string]bool{
	model.SettingDailyPostingEnabled: true,
	model.SettingPostingTime:         true,
	model.SettingRotationStrategy:    true,
	model.SettingAutoShare:           true,
	model.SettingQualityThreshold:    true,
	model.SettingMaxPostsPerCountry:  true,
	model.SettingTargetPostLength:    true,
	model.SettingResearchDataSources: true,
}

func automationSetConfigHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req configRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		if !knownSettingKeys[req.Key] {
			respondWithError(w, http.StatusBadRequest, "Unknown setting key")
			return
		}

		if err := srv.SettingsStore.Set(req.Key, req.Value); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update setting")
			return
		}

		audit.Log(audit.ConfigChangeEvent{
			Username: middleware.UsernameFromContext(r.Context()),
			ClientIP: clientIP(r),
			Key:      req.Key,
			Value:    req.Value,
		})
		respondWithJSON(w, http.StatusOK, map[string]string{req.Key: req.Value})
	}
}

// generateRequest optionally pins the run to a country or technology.
type generateRequest struct {
	CountryID    uint `json:"country_id"`
	TechnologyID uint `json:"technology_id"`
}

func automationGenerateHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if r.ContentLength > 0 && !decodeAndValidate(w, r, &req) {
			return
		}

		result, err := srv.Scheduler.TriggerNow(r.Context(), req.CountryID, req.TechnologyID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, result)
	}
}

func automationPreviewHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if r.ContentLength > 0 && !decodeAndValidate(w, r, &req) {
			return
		}

		result, err := srv.Generator.Preview(r.Context(), req.CountryID, req.TechnologyID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}

func automationScheduleHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shares, err := srv.SharesStore.ListScheduled()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load scheduled shares")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"pending_shares": shares,
			"count":          len(shares),
		})
	}
}

func automationAnalyticsHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

		regionCounts, err := srv.PostsStore.CountByRegionSince(monthStart)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load automation analytics")
			return
		}
		statusCounts, err := srv.SharesStore.CountByStatus()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load automation analytics")
			return
		}
		platformCounts, err := srv.SharesStore.CountByPlatform()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load automation analytics")
			return
		}

		var published, failed int64
		for _, c := range statusCounts {
			switch c.Status {
			case model.ShareStatusPublished:
				published = c.Count
			case model.ShareStatusFailed:
				failed = c.Count
			}
		}
		successRate := 1.0
		if published+failed > 0 {
			successRate = float64(published) / float64(published+failed)
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"posts_by_region_this_month": regionCounts,
			"shares_by_status":           statusCounts,
			"shares_by_platform":         platformCounts,
			"share_success_rate":         successRate,
		})
	}
}

func automationLogsHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auditStore := audit.ActiveStore()
		if auditStore == nil {
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"messages": []audit.Message{},
				"note":     "audit database is not configured",
			})
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		messages, err := auditStore.Recent(r.URL.Query().Get("type"), limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load logs")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
	}
}
