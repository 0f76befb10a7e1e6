package endpoints

import (
	"errors"
	"net/http"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/gorilla/mux"

	"github.com/CryptoTanAI/TechBlog/pkg/audit"
	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// RegisterNewsletterEndpoints registers the public subscription
// endpoints and the admin subscriber listing.
func RegisterNewsletterEndpoints(srv *server.Server) {
	r := srv.Router

	r.HandleFunc("/api/newsletter/subscribe", subscribeHandler(srv)).Methods("POST")
	r.HandleFunc("/api/newsletter/unsubscribe/{token}", unsubscribeHandler(srv)).Methods("GET")

	admin := srv.Auth.Middleware
	r.Handle("/api/newsletter/subscribers", admin(listSubscribersHandler(srv))).Methods("GET")
}

type subscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Source string `json:"source"`
}

func subscribeHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		token, err := gonanoid.New()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
			return
		}

		source := req.Source
		if source == "" {
			source = "website"
		}
		subscriber := &model.Subscriber{
			Email:            strings.ToLower(strings.TrimSpace(req.Email)),
			IsActive:         true,
			Source:           source,
			UnsubscribeToken: token,
		}

		if err := srv.SubscribersStore.Subscribe(subscriber); err != nil {
			if errors.Is(err, store.ErrAlreadySubscribed) {
				respondWithError(w, http.StatusConflict, "Email already subscribed")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
			return
		}

		// Welcome email failures don't fail the subscription
		_ = srv.Mailer.SendWelcome(subscriber)

		audit.Log(audit.SubscribeEvent{Email: subscriber.Email, ClientIP: clientIP(r), Operation: "subscribe"})
		respondWithJSON(w, http.StatusCreated, map[string]string{"subscribed": subscriber.Email})
	}
}

func unsubscribeHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := mux.Vars(r)["token"]

		if err := srv.SubscribersStore.Unsubscribe(token); err != nil {
			if errors.Is(err, store.ErrSubscriberNotFound) {
				respondWithError(w, http.StatusNotFound, "Unknown unsubscribe token")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to unsubscribe")
			return
		}

		audit.Log(audit.SubscribeEvent{ClientIP: clientIP(r), Operation: "unsubscribe"})
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "unsubscribed"})
	}
}

func listSubscribersHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscribers, err := srv.SubscribersStore.ListActive()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list subscribers")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"subscribers": subscribers,
			"count":       len(subscribers),
		})
	}
}
