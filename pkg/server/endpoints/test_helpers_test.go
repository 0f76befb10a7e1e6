package endpoints

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/CryptoTanAI/TechBlog/pkg/automation"
	"github.com/CryptoTanAI/TechBlog/pkg/config"
	"github.com/CryptoTanAI/TechBlog/pkg/newsletter"
	"github.com/CryptoTanAI/TechBlog/pkg/openai"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
	"github.com/CryptoTanAI/TechBlog/pkg/server/middleware"
	"github.com/CryptoTanAI/TechBlog/pkg/social"
)

// testMocks bundles the mocked stores behind a test server.
type testMocks struct {
	Posts        *MockPostsStore
	Countries    *MockCountriesStore
	Technologies *MockTechnologiesStore
	Settings     *MockSettingsStore
	Subscribers  *MockSubscribersStore
	Shares       *MockSharesStore
	Media        *MockMediaStore
	Users        *MockUsersStore
	Analytics    *MockAnalyticsStore
	Health       *MockHealthStore
}

// stubClient satisfies automation.ContentClient with a fixed article.
type stubClient struct {
	content string
	err     error
}

func (c stubClient) Complete(_ context.Context, _ []openai.Message, _ int) (string, error) {
	return c.content, c.err
}

// newTestServer builds a server wired entirely to mocks.
func newTestServer(client automation.ContentClient) (*server.Server, *testMocks) {
	mocks := &testMocks{
		Posts:        NewMockPostsStore(),
		Countries:    NewMockCountriesStore(),
		Technologies: NewMockTechnologiesStore(),
		Settings:     NewMockSettingsStore(),
		Subscribers:  NewMockSubscribersStore(),
		Shares:       NewMockSharesStore(),
		Media:        NewMockMediaStore(),
		Users:        NewMockUsersStore(),
		Analytics:    NewMockAnalyticsStore(),
		Health:       NewMockHealthStore(),
	}

	cfg := &config.Config{
		Port:            5000,
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
		SiteURL:         "http://localhost:5000",
	}

	generator := automation.NewGenerator(mocks.Posts, mocks.Countries, mocks.Technologies, mocks.Settings, client, nil)
	publisher := social.NewPublisher(mocks.Shares, mocks.Posts, nil, cfg.SiteURL)
	scheduler := automation.NewScheduler(generator, publisher, nil, mocks.Settings, mocks.Posts, nil)

	srv := &server.Server{
		Router: mux.NewRouter(),
		Config: cfg,

		PostsStore:        mocks.Posts,
		CountriesStore:    mocks.Countries,
		TechnologiesStore: mocks.Technologies,
		SettingsStore:     mocks.Settings,
		SubscribersStore:  mocks.Subscribers,
		SharesStore:       mocks.Shares,
		MediaStore:        mocks.Media,
		UsersStore:        mocks.Users,
		AnalyticsStore:    mocks.Analytics,
		HealthStore:       mocks.Health,

		Generator: generator,
		Scheduler: scheduler,
		Publisher: publisher,
		Mailer:    newsletter.NewMailer("", 0, "", "", cfg.SiteURL, nil),
		Auth:      middleware.NewTokenAuthenticator(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute),
	}
	return srv, mocks
}

// adminToken issues a bearer token accepted by the test server.
func adminToken(t *testing.T, srv *server.Server) string {
	t.Helper()
	token, err := srv.Auth.IssueToken("admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

// doRequest runs a request through the router and returns the recorder.
func doRequest(srv *server.Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}
