package automation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
	"github.com/CryptoTanAI/TechBlog/pkg/social"
)

type memShares struct {
	store.SharesStore
	created []model.SocialShare
}

func (m *memShares) Create(share *model.SocialShare) error {
	share.ID = uint(len(m.created) + 1)
	m.created = append(m.created, *share)
	return nil
}

func (m *memShares) ListDue(now time.Time) ([]model.SocialShare, error) {
	return nil, nil
}

func newTestScheduler(posts *memPosts, settings *memSettings, client ContentClient) (*Scheduler, *memShares) {
	shares := &memShares{}
	gen := newTestGenerator(posts, settings, client)
	pub := social.NewPublisher(shares, posts, nil, "https://techsouth.example.com")
	return NewScheduler(gen, pub, nil, settings, posts, nil), shares
}

func TestSchedulerStartStop(t *testing.T) {
	sched, _ := newTestScheduler(newMemPosts(), newMemSettings(nil), &stubClient{content: "x"})

	require.NoError(t, sched.Start())
	assert.True(t, sched.Status().Running)
	assert.Error(t, sched.Start())

	require.NoError(t, sched.Stop())
	assert.False(t, sched.Status().Running)
	assert.Error(t, sched.Stop())
}

func TestSchedulerStatusReflectsSettings(t *testing.T) {
	settings := newMemSettings(map[string]string{
		model.SettingDailyPostingEnabled: "true",
		model.SettingPostingTime:         "10:30",
	})
	sched, _ := newTestScheduler(newMemPosts(), settings, &stubClient{content: "x"})

	status := sched.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "10:30", status.PostingTime)
}

func TestSchedulerBadPostingTimeFallsBack(t *testing.T) {
	settings := newMemSettings(map[string]string{
		model.SettingPostingTime: "25:99",
	})
	sched, _ := newTestScheduler(newMemPosts(), settings, &stubClient{content: "x"})

	assert.Equal(t, DefaultPostingTime, sched.Status().PostingTime)
}

func TestTickGeneratesAtPostingTime(t *testing.T) {
	posts := newMemPosts()
	settings := newMemSettings(map[string]string{
		model.SettingDailyPostingEnabled: "true",
		model.SettingPostingTime:         "09:00",
		model.SettingAutoShare:           "true",
	})
	sched, shares := newTestScheduler(posts, settings, &stubClient{content: substantiveArticle(900)})

	// Wrong minute: nothing happens
	sched.tick(time.Date(2025, 6, 2, 8, 59, 0, 0, time.UTC))
	assert.Empty(t, posts.created)

	// Posting time: generates, publishes and schedules shares
	sched.tick(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	require.Len(t, posts.created, 1)
	assert.Equal(t, model.PostStatusPublished, posts.created[0].Status)
	assert.Len(t, shares.created, len(social.Specs))
}

func TestTickSkipsWhenDisabled(t *testing.T) {
	posts := newMemPosts()
	settings := newMemSettings(map[string]string{
		model.SettingDailyPostingEnabled: "false",
		model.SettingPostingTime:         "09:00",
	})
	sched, _ := newTestScheduler(posts, settings, &stubClient{content: substantiveArticle(900)})

	sched.tick(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, posts.created)
}

func TestTickOnePostPerDay(t *testing.T) {
	posts := newMemPosts()
	posts.createdToday = 1
	settings := newMemSettings(map[string]string{
		model.SettingDailyPostingEnabled: "true",
		model.SettingPostingTime:         "09:00",
	})
	sched, _ := newTestScheduler(posts, settings, &stubClient{content: substantiveArticle(900)})

	sched.tick(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, posts.created)
}

func TestTriggerNowIgnoresSchedule(t *testing.T) {
	posts := newMemPosts()
	// Automation disabled, off-schedule: manual trigger still works
	sched, _ := newTestScheduler(posts, newMemSettings(nil), &stubClient{content: substantiveArticle(900)})

	result, err := sched.TriggerNow(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.True(t, result.Published)
	require.Len(t, posts.created, 1)

	status := sched.Status()
	assert.Equal(t, int64(1), status.RunCount)
	assert.Empty(t, status.LastError)
	assert.False(t, status.LastRun.IsZero())
}

func TestTickWeeklyAnalyticsOnSundayNight(t *testing.T) {
	posts := newMemPosts()
	posts.weeklyStats = store.PostStats{Posts: 7, Views: 420, Shares: 21}
	sched, _ := newTestScheduler(posts, newMemSettings(nil), &stubClient{content: "x"})

	// 2025-06-01 is a Sunday
	sched.tick(time.Date(2025, 6, 1, 22, 59, 0, 0, time.UTC))
	assert.Zero(t, posts.statsCalls)

	sched.tick(time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, posts.statsCalls)

	// Monday at the same time: not a weekly boundary
	sched.tick(time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, posts.statsCalls)
}

func TestTriggerNowGeneratesMediaAssets(t *testing.T) {
	posts := newMemPosts()
	media := &memMedia{}
	shares := &memShares{}
	gen := newTestGenerator(posts, newMemSettings(nil), &stubClient{content: substantiveArticle(900)})
	pub := social.NewPublisher(shares, posts, nil, "https://techsouth.example.com")
	mediaGen := NewMediaGenerator(media, posts, nil, nil)
	sched := NewScheduler(gen, pub, mediaGen, newMemSettings(nil), posts, nil)

	result, err := sched.TriggerNow(context.Background(), 0, 0)
	require.NoError(t, err)

	require.NotEmpty(t, media.created)
	for _, asset := range media.created {
		assert.Equal(t, result.Post.ID, asset.PostID)
	}
	assert.True(t, media.created[0].IsFeatured)
}

func TestTriggerNowDraftsSkipShares(t *testing.T) {
	posts := newMemPosts()
	settings := newMemSettings(map[string]string{
		model.SettingAutoShare: "true",
	})
	sched, shares := newTestScheduler(posts, settings, &stubClient{content: "too short"})

	result, err := sched.TriggerNow(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.False(t, result.Published)
	assert.Empty(t, shares.created)
}
