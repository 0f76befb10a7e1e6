package automation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

func TestGeneratePostPublishesAboveThreshold(t *testing.T) {
	posts := newMemPosts()
	client := &stubClient{content: substantiveArticle(900)}
	gen := newTestGenerator(posts, newMemSettings(nil), client)

	result, err := gen.GeneratePost(context.Background(), "manual")
	require.NoError(t, err)

	assert.True(t, result.Published)
	assert.GreaterOrEqual(t, result.Report.Score, DefaultQualityThreshold)
	require.Len(t, posts.created, 1)

	saved := posts.created[0]
	assert.Equal(t, model.PostStatusPublished, saved.Status)
	assert.NotNil(t, saved.PublishedAt)
	assert.NotEmpty(t, saved.Slug)
	assert.NotEmpty(t, saved.Excerpt)
	assert.Greater(t, saved.WordCount, 0)
	assert.Greater(t, saved.ReadingTime, 0)
	assert.NotEmpty(t, saved.TagList())
}

func TestGeneratePostKeepsLowQualityAsDraft(t *testing.T) {
	posts := newMemPosts()
	client := &stubClient{content: "Far too short to publish."}
	gen := newTestGenerator(posts, newMemSettings(nil), client)

	result, err := gen.GeneratePost(context.Background(), "scheduler")
	require.NoError(t, err)

	assert.False(t, result.Published)
	require.Len(t, posts.created, 1)
	assert.Equal(t, model.PostStatusDraft, posts.created[0].Status)
	assert.Nil(t, posts.created[0].PublishedAt)
}

func TestGeneratePostFallsBackWhenClientFails(t *testing.T) {
	posts := newMemPosts()
	client := &stubClient{err: errors.New("api down")}
	gen := newTestGenerator(posts, newMemSettings(nil), client)

	result, err := gen.GeneratePost(context.Background(), "scheduler")
	require.NoError(t, err)

	// Fallback content is a stub that must never auto-publish
	assert.False(t, result.Published)
	require.Len(t, posts.created, 1)
	assert.Equal(t, model.PostStatusDraft, posts.created[0].Status)
	assert.Contains(t, posts.created[0].Content, "editorial review")
}

func TestGeneratePostRespectsThresholdSetting(t *testing.T) {
	posts := newMemPosts()
	// Substantive but below the default word target
	client := &stubClient{content: substantiveArticle(500)}
	settings := newMemSettings(map[string]string{
		model.SettingQualityThreshold: "0.5",
	})
	gen := newTestGenerator(posts, settings, client)

	result, err := gen.GeneratePost(context.Background(), "manual")
	require.NoError(t, err)
	assert.True(t, result.Published)
}

func TestGeneratePostDeduplicatesSlug(t *testing.T) {
	posts := newMemPosts()
	client := &stubClient{content: substantiveArticle(900)}
	gen := newTestGenerator(posts, newMemSettings(nil), client)

	first, err := gen.GeneratePost(context.Background(), "manual")
	require.NoError(t, err)

	// Force the same title's slug to collide
	posts.slugs[first.Post.Slug] = true
	for i := 0; i < 5; i++ {
		result, err := gen.GeneratePost(context.Background(), "manual")
		require.NoError(t, err)
		for _, existing := range posts.created[:len(posts.created)-1] {
			assert.NotEqual(t, existing.Slug, result.Post.Slug)
		}
	}
}

func TestPreviewDoesNotSave(t *testing.T) {
	posts := newMemPosts()
	client := &stubClient{content: substantiveArticle(900)}
	gen := newTestGenerator(posts, newMemSettings(nil), client)

	result, err := gen.Preview(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.NotNil(t, result.Post)
	assert.True(t, result.Published)
	assert.Empty(t, posts.created)
}

func TestResearchContext(t *testing.T) {
	kenya := testCountries()[0]
	context := researchContext(&kenya)

	assert.Contains(t, context, "Africa")
	assert.Contains(t, context, "GDP per capita")
	assert.Contains(t, context, "Lower Middle Income")
}

func TestMakeExcerptSkipsHeadings(t *testing.T) {
	content := "## Heading\n\nFirst real paragraph of the article.\n\nSecond paragraph."
	excerpt := makeExcerpt(content)

	assert.Equal(t, "First real paragraph of the article.", excerpt)
	assert.False(t, strings.HasPrefix(excerpt, "#"))
}
