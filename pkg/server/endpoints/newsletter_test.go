package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

func TestSubscribe(t *testing.T) {
	t.Run("subscribes a new email", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterNewsletterEndpoints(srv)

		mocks.Subscribers.On("Subscribe", mock.MatchedBy(func(s *model.Subscriber) bool {
			return s.Email == "reader@example.com" && s.IsActive && s.UnsubscribeToken != ""
		})).Return(nil)

		req := httptest.NewRequest("POST", "/api/newsletter/subscribe",
			strings.NewReader(`{"email":"Reader@Example.com"}`))
		w := doRequest(srv, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mocks.Subscribers.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterNewsletterEndpoints(srv)
		mocks.Subscribers.On("Subscribe", mock.Anything).Return(store.ErrAlreadySubscribed)

		req := httptest.NewRequest("POST", "/api/newsletter/subscribe",
			strings.NewReader(`{"email":"reader@example.com"}`))
		w := doRequest(srv, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already subscribed")
	})

	t.Run("invalid email", func(t *testing.T) {
		srv, _ := newTestServer(nil)
		RegisterNewsletterEndpoints(srv)

		req := httptest.NewRequest("POST", "/api/newsletter/subscribe",
			strings.NewReader(`{"email":"not-an-email"}`))
		w := doRequest(srv, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "valid email")
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("known token", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterNewsletterEndpoints(srv)
		mocks.Subscribers.On("Unsubscribe", "tok123").Return(nil)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/newsletter/unsubscribe/tok123", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "unsubscribed")
	})

	t.Run("unknown token", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterNewsletterEndpoints(srv)
		mocks.Subscribers.On("Unsubscribe", "bogus").Return(store.ErrSubscriberNotFound)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/newsletter/unsubscribe/bogus", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListSubscribers(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		srv, _ := newTestServer(nil)
		RegisterNewsletterEndpoints(srv)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/newsletter/subscribers", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lists active subscribers", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterNewsletterEndpoints(srv)
		mocks.Subscribers.On("ListActive").Return([]model.Subscriber{
			{ID: 1, Email: "reader@example.com", IsActive: true},
		}, nil)

		req := httptest.NewRequest("GET", "/api/newsletter/subscribers", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t, srv))
		w := doRequest(srv, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "reader@example.com")
		assert.Contains(t, w.Body.String(), `"count":1`)
	})
}
