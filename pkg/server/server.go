package server

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/CryptoTanAI/TechBlog/pkg/automation"
	"github.com/CryptoTanAI/TechBlog/pkg/config"
	"github.com/CryptoTanAI/TechBlog/pkg/newsletter"
	"github.com/CryptoTanAI/TechBlog/pkg/openai"
	"github.com/CryptoTanAI/TechBlog/pkg/server/middleware"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
	gormstore "github.com/CryptoTanAI/TechBlog/pkg/server/store/gorm"
	"github.com/CryptoTanAI/TechBlog/pkg/social"
)

// Server holds the router, the stores and the automation components.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	PostsStore        store.PostsStore
	CountriesStore    store.CountriesStore
	TechnologiesStore store.TechnologiesStore
	SettingsStore     store.SettingsStore
	SubscribersStore  store.SubscribersStore
	SharesStore       store.SharesStore
	MediaStore        store.MediaStore
	UsersStore        store.UsersStore
	AnalyticsStore    store.AnalyticsStore
	HealthStore       store.HealthStore

	Generator *automation.Generator
	Scheduler *automation.Scheduler
	Publisher *social.Publisher
	Mailer    *newsletter.Mailer
	Auth      *middleware.TokenAuthenticator

	srv *http.Server
}

// NewServer wires a server from a database connection and config.
func NewServer(db *gorm.DB, cfg *config.Config, host string) *Server {
	router := mux.NewRouter().UseEncodedPath()

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    host + ":" + strconv.Itoa(cfg.Port),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	posts := gormstore.NewPostsStore(db)
	countries := gormstore.NewCountriesStore(db)
	technologies := gormstore.NewTechnologiesStore(db)
	settings := gormstore.NewSettingsStore(db)
	shares := gormstore.NewSharesStore(db)
	media := gormstore.NewMediaStore(db)

	client := openai.NewClient(cfg.OpenAIAPIKey, openai.WithModel(cfg.OpenAIModel))
	generator := automation.NewGenerator(posts, countries, technologies, settings, client, nil)
	publisher := social.NewPublisher(shares, posts, nil, cfg.SiteURL)
	mediaGen := automation.NewMediaGenerator(media, posts, nil, nil)
	scheduler := automation.NewScheduler(generator, publisher, mediaGen, settings, posts, nil)
	mailer := newsletter.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword, cfg.SiteURL, nil)
	auth := middleware.NewTokenAuthenticator(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,

		PostsStore:        posts,
		CountriesStore:    countries,
		TechnologiesStore: technologies,
		SettingsStore:     settings,
		SubscribersStore:  gormstore.NewSubscribersStore(db),
		SharesStore:       shares,
		MediaStore:        media,
		UsersStore:        gormstore.NewUsersStore(db),
		AnalyticsStore:    gormstore.NewAnalyticsStore(db),
		HealthStore:       gormstore.NewHealthStore(db),

		Generator: generator,
		Scheduler: scheduler,
		Publisher: publisher,
		Mailer:    mailer,
		Auth:      auth,

		srv: srv,
	}
}

// Start runs the HTTP server. Blocks until the server exits.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
