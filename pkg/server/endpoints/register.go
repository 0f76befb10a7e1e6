package endpoints

import (
	"github.com/CryptoTanAI/TechBlog/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAuthenticateEndpoint(srv)
	RegisterPostsEndpoints(srv)
	RegisterCountriesEndpoints(srv)
	RegisterTechnologiesEndpoints(srv)
	RegisterMediaEndpoints(srv)
	RegisterSharesEndpoints(srv)
	RegisterNewsletterEndpoints(srv)
	RegisterAnalyticsEndpoints(srv)
	RegisterAutomationEndpoints(srv)

	// Static files
	RegisterStaticFiles(srv)
}
