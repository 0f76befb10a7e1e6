package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

func publishedPost() *model.Post {
	now := time.Now().UTC()
	post := &model.Post{
		ID:           7,
		Title:        "Mobile Money in Kenya: Technology Driving Development",
		Slug:         "mobile-money-in-kenya-technology-driving-development",
		Content:      "## Overview\n\nMobile money has transformed payments.",
		Excerpt:      "Mobile money has transformed payments.",
		CountryID:    1,
		TechnologyID: 2,
		Status:       model.PostStatusPublished,
		PublishedAt:  &now,
	}
	post.SetTags([]string{"Fintech", "Kenya"})
	return post
}

func TestListPosts(t *testing.T) {
	t.Run("anonymous callers only see published posts", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		page := &store.PostPage{Posts: []model.Post{*publishedPost()}, Total: 1, Page: 1, PerPage: 10, TotalPages: 1}
		mocks.Posts.On("List", mock.MatchedBy(func(f store.PostFilter) bool {
			return f.Status == model.PostStatusPublished
		})).Return(page, nil)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/posts?status=draft", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mocks.Posts.AssertExpectations(t)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["total"])
	})

	t.Run("admins can filter by status", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		page := &store.PostPage{Posts: nil, Total: 0, Page: 1, PerPage: 10, TotalPages: 0}
		mocks.Posts.On("List", mock.MatchedBy(func(f store.PostFilter) bool {
			return f.Status == model.PostStatusDraft
		})).Return(page, nil)

		req := httptest.NewRequest("GET", "/api/posts?status=draft", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t, srv))
		w := doRequest(srv, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mocks.Posts.AssertExpectations(t)
	})
}

func TestSearchPosts(t *testing.T) {
	t.Run("requires a query", func(t *testing.T) {
		srv, _ := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/posts/search", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("searches published posts", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		page := &store.PostPage{Posts: []model.Post{*publishedPost()}, Total: 1, Page: 1, PerPage: 10, TotalPages: 1}
		mocks.Posts.On("List", mock.MatchedBy(func(f store.PostFilter) bool {
			return f.Search == "mobile" && f.Status == model.PostStatusPublished
		})).Return(page, nil)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/posts/search?q=mobile", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mobile-money-in-kenya")
	})
}

func TestGetPostBySlug(t *testing.T) {
	t.Run("published post increments the view count", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		post := publishedPost()
		mocks.Posts.On("GetBySlug", post.Slug).Return(post, nil)
		mocks.Posts.On("IncrementViewCount", post.ID).Return(nil)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/posts/"+post.Slug, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mocks.Posts.AssertExpectations(t)
	})

	t.Run("html rendering on demand", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		post := publishedPost()
		mocks.Posts.On("GetBySlug", post.Slug).Return(post, nil)
		mocks.Posts.On("IncrementViewCount", post.ID).Return(nil)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/posts/slug/"+post.Slug+"?format=html", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["content_html"], "<h2")
	})

	t.Run("drafts are invisible", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		draft := publishedPost()
		draft.Status = model.PostStatusDraft
		draft.PublishedAt = nil
		mocks.Posts.On("GetBySlug", draft.Slug).Return(draft, nil)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/posts/"+draft.Slug, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown slug", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterPostsEndpoints(srv)
		mocks.Posts.On("GetBySlug", "nope").Return(nil, store.ErrPostNotFound)

		w := doRequest(srv, httptest.NewRequest("GET", "/api/posts/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreatePost(t *testing.T) {
	payload := `{
		"title": "Solar Grids in Nigeria",
		"content": "## Power\n\nDistributed solar is growing fast.",
		"country_id": 3,
		"technology_id": 4,
		"tags": ["Energy"],
		"status": "published"
	}`

	t.Run("requires a token", func(t *testing.T) {
		srv, _ := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(payload))
		w := doRequest(srv, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("creates and publishes", func(t *testing.T) {
		srv, mocks := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		mocks.Posts.On("SlugExists", "solar-grids-in-nigeria").Return(false, nil)
		mocks.Posts.On("Create", mock.MatchedBy(func(p *model.Post) bool {
			return p.Slug == "solar-grids-in-nigeria" &&
				p.Status == model.PostStatusPublished &&
				p.PublishedAt != nil &&
				p.WordCount > 0
		})).Return(nil)

		req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+adminToken(t, srv))
		w := doRequest(srv, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mocks.Posts.AssertExpectations(t)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		srv, _ := newTestServer(nil)
		RegisterPostsEndpoints(srv)

		req := httptest.NewRequest("POST", "/api/posts",
			strings.NewReader(`{"content":"x","country_id":1,"technology_id":1}`))
		req.Header.Set("Authorization", "Bearer "+adminToken(t, srv))
		w := doRequest(srv, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title is required")
	})
}

func TestSetPostStatus(t *testing.T) {
	srv, mocks := newTestServer(nil)
	RegisterPostsEndpoints(srv)

	draft := publishedPost()
	draft.Status = model.PostStatusDraft
	draft.PublishedAt = nil
	mocks.Posts.On("GetByID", draft.ID).Return(draft, nil)
	mocks.Posts.On("Update", mock.MatchedBy(func(p *model.Post) bool {
		return p.Status == model.PostStatusPublished && p.PublishedAt != nil
	})).Return(nil)

	req := httptest.NewRequest("PUT", "/api/posts/7/status",
		strings.NewReader(`{"status":"published"}`))
	req.Header.Set("Authorization", "Bearer "+adminToken(t, srv))
	w := doRequest(srv, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.Posts.AssertExpectations(t)
}

func TestDeletePost(t *testing.T) {
	srv, mocks := newTestServer(nil)
	RegisterPostsEndpoints(srv)

	post := publishedPost()
	mocks.Posts.On("GetByID", post.ID).Return(post, nil)
	mocks.Posts.On("Delete", post.ID).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/posts/7", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, srv))
	w := doRequest(srv, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.Posts.AssertExpectations(t)
}
