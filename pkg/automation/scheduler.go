package automation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
	"github.com/CryptoTanAI/TechBlog/pkg/social"
)

// DefaultPostingTime is used when the posting_time setting is missing
// or malformed. Times are UTC.
const DefaultPostingTime = "09:00"

// weeklyAnalyticsTime is when the Sunday analytics summary is logged.
const weeklyAnalyticsTime = "23:00"

// Scheduler drives the daily pipeline on a minute tick.
type Scheduler struct {
	generator *Generator
	publisher *social.Publisher
	media     *MediaGenerator
	settings  store.SettingsStore
	posts     store.PostsStore
	logger    *slog.Logger

	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	lastRun  time.Time
	lastErr  string
	runCount int64
}

// NewScheduler creates a Scheduler. media may be nil to skip media
// asset generation.
func NewScheduler(
	generator *Generator,
	publisher *social.Publisher,
	media *MediaGenerator,
	settings store.SettingsStore,
	posts store.PostsStore,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		generator: generator,
		publisher: publisher,
		media:     media,
		settings:  settings,
		posts:     posts,
		logger:    logger,
	}
}

// Status is a snapshot of the scheduler state for the admin API.
type Status struct {
	Running     bool      `json:"running"`
	Enabled     bool      `json:"enabled"`
	PostingTime string    `json:"posting_time"`
	LastRun     time.Time `json:"last_run,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
	RunCount    int64     `json:"run_count"`
}

// Start launches the tick loop. Returns an error if already running.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("scheduler already running")
	}
	s.running = true
	s.stopCh = make(chan struct{})
	go s.loop(s.stopCh)
	s.logger.Info("automation scheduler started")
	return nil
}

// Stop halts the tick loop. Returns an error if not running.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return fmt.Errorf("scheduler is not running")
	}
	close(s.stopCh)
	s.running = false
	s.logger.Info("automation scheduler stopped")
	return nil
}

// Status reports the current scheduler state.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Running:     s.running,
		Enabled:     s.enabled(),
		PostingTime: s.postingTime(),
		LastRun:     s.lastRun,
		LastError:   s.lastErr,
		RunCount:    s.runCount,
	}
}

// TriggerNow runs one generation immediately, regardless of schedule.
// countryID and technologyID override selection when nonzero.
func (s *Scheduler) TriggerNow(ctx context.Context, countryID, technologyID uint) (*Result, error) {
	result, err := s.generator.GeneratePostFor(ctx, "manual", countryID, technologyID)
	s.recordRun(err)
	if err != nil {
		return nil, err
	}
	s.generateMedia(ctx, result)
	s.scheduleShares(result)
	return result, nil
}

func (s *Scheduler) loop(stop chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			s.tick(now.UTC())
		}
	}
}

// tick delivers due shares every minute, logs the weekly analytics
// summary on Sunday night, and runs the daily generation when the
// posting time comes around.
func (s *Scheduler) tick(now time.Time) {
	if delivered, err := s.publisher.ProcessDue(now); err != nil {
		s.logger.Error("failed to process due shares", "error", err)
	} else if delivered > 0 {
		s.logger.Info("delivered social shares", "count", delivered)
	}

	if now.Weekday() == time.Sunday && now.Format("15:04") == weeklyAnalyticsTime {
		s.logWeeklyAnalytics(now)
	}

	if !s.enabled() {
		return
	}
	if now.Format("15:04") != s.postingTime() {
		return
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	count, err := s.posts.CountCreatedSince(dayStart)
	if err != nil {
		s.logger.Error("failed to check today's posts", "error", err)
		return
	}
	if count > 0 {
		// One generated post per day
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := s.generator.GeneratePost(ctx, "scheduler")
	s.recordRun(err)
	if err != nil {
		s.logger.Error("scheduled generation failed", "error", err)
		return
	}
	s.generateMedia(ctx, result)
	s.scheduleShares(result)
}

// logWeeklyAnalytics logs the post, view and share totals for the last
// seven days.
func (s *Scheduler) logWeeklyAnalytics(now time.Time) {
	stats, err := s.posts.PublishedStatsSince(now.AddDate(0, 0, -7))
	if err != nil {
		s.logger.Error("failed to compute weekly analytics", "error", err)
		return
	}
	s.logger.Info("weekly analytics",
		"posts", stats.Posts,
		"views", stats.Views,
		"shares", stats.Shares,
	)
}

// generateMedia creates the visual assets for a freshly generated post.
func (s *Scheduler) generateMedia(ctx context.Context, result *Result) {
	if s.media == nil {
		return
	}
	post := result.Post
	if post.Country == nil || post.Technology == nil {
		return
	}
	if _, err := s.media.GeneratePostMedia(ctx, post, post.Country, post.Technology); err != nil {
		s.logger.Error("failed to generate media assets", "slug", post.Slug, "error", err)
	}
}

// scheduleShares queues social shares for a freshly published post when
// auto-sharing is on. Drafts are never shared.
func (s *Scheduler) scheduleShares(result *Result) {
	if !result.Published || !s.autoShare() {
		return
	}
	if _, err := s.publisher.SchedulePost(result.Post, time.Now().UTC()); err != nil {
		s.logger.Error("failed to schedule shares", "slug", result.Post.Slug, "error", err)
	}
}

func (s *Scheduler) recordRun(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRun = time.Now().UTC()
	s.runCount++
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.lastErr = ""
	}
}

func (s *Scheduler) enabled() bool {
	setting, err := s.settings.Get(model.SettingDailyPostingEnabled)
	if err != nil {
		return false
	}
	b, err := strconv.ParseBool(setting.Value)
	return err == nil && b
}

func (s *Scheduler) autoShare() bool {
	setting, err := s.settings.Get(model.SettingAutoShare)
	if err != nil {
		return false
	}
	b, err := strconv.ParseBool(setting.Value)
	return err == nil && b
}

func (s *Scheduler) postingTime() string {
	setting, err := s.settings.Get(model.SettingPostingTime)
	if err != nil {
		return DefaultPostingTime
	}
	if _, parseErr := time.Parse("15:04", setting.Value); parseErr != nil {
		return DefaultPostingTime
	}
	return setting.Value
}
