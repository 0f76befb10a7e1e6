package endpoints

import (
	"errors"
	"net/http"

	"github.com/CryptoTanAI/TechBlog/pkg/audit"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

// RegisterAuthenticateEndpoint registers the admin login endpoint.
func RegisterAuthenticateEndpoint(srv *server.Server) {
	srv.Router.HandleFunc("/api/auth/login", loginHandler(srv)).Methods("POST")
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func loginHandler(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := srv.UsersStore.GetByUsername(req.Username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				audit.Log(audit.LoginEvent{
					Username:     req.Username,
					ClientIP:     clientIP(r),
					Success:      false,
					ErrorMessage: "unknown user",
				})
				respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		if !user.CheckPassword(req.Password) {
			audit.Log(audit.LoginEvent{
				Username:     req.Username,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: "invalid credentials",
			})
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := srv.Auth.IssueToken(user.Username)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		audit.Log(audit.LoginEvent{
			Username: user.Username,
			ClientIP: clientIP(r),
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"token":      token,
			"username":   user.Username,
			"expires_in": srv.Config.TokenTTLMinutes * 60,
		})
	}
}
