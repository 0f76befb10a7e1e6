package social

import (
	"fmt"
	"strings"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/audit"
	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
	"github.com/CryptoTanAI/TechBlog/pkg/utils"
)

// Shares are staggered so platforms don't all fire at once.
const stagger = 30 * time.Minute

// Sender delivers one share to its platform. The default LogSender just
// records the delivery; real platform integrations implement this.
type Sender interface {
	Send(share *model.SocialShare) (platformPostID string, err error)
}

// LogSender marks shares as delivered without calling any platform API.
type LogSender struct{}

// Send implements Sender.
func (LogSender) Send(share *model.SocialShare) (string, error) {
	return fmt.Sprintf("%s-%d-%d", share.Platform, share.PostID, time.Now().Unix()), nil
}

// Publisher formats, schedules and delivers social shares.
type Publisher struct {
	shares  store.SharesStore
	posts   store.PostsStore
	sender  Sender
	siteURL string
}

// NewPublisher creates a Publisher. A nil sender falls back to LogSender.
func NewPublisher(shares store.SharesStore, posts store.PostsStore, sender Sender, siteURL string) *Publisher {
	if sender == nil {
		sender = LogSender{}
	}
	return &Publisher{
		shares:  shares,
		posts:   posts,
		sender:  sender,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

// SchedulePost creates one scheduled share per platform, staggered by
// 30 minutes starting from now.
func (p *Publisher) SchedulePost(post *model.Post, now time.Time) ([]model.SocialShare, error) {
	shareURL := p.shareURL(post)
	var created []model.SocialShare
	for i, spec := range Specs {
		at := now.Add(time.Duration(i) * stagger)
		share := model.SocialShare{
			PostID:      post.ID,
			Platform:    spec.Name,
			ShareURL:    shareURL,
			ShareText:   FormatShareText(post, spec, shareURL),
			Status:      model.ShareStatusScheduled,
			ScheduledAt: &at,
		}
		if err := p.shares.Create(&share); err != nil {
			return created, fmt.Errorf("failed to schedule %s share: %w", spec.Name, err)
		}
		created = append(created, share)
	}
	return created, nil
}

// ProcessDue delivers every share that has come due. Failures are
// recorded on the share and do not stop the rest of the batch.
func (p *Publisher) ProcessDue(now time.Time) (delivered int, err error) {
	due, err := p.shares.ListDue(now)
	if err != nil {
		return 0, err
	}

	for i := range due {
		share := &due[i]
		slug := p.postSlug(share.PostID)

		platformPostID, sendErr := p.sender.Send(share)
		if sendErr != nil {
			share.Status = model.ShareStatusFailed
			share.ErrorMessage = sendErr.Error()
			_ = p.shares.Update(share)
			audit.Log(audit.ShareEvent{
				Platform:     share.Platform,
				PostSlug:     slug,
				Success:      false,
				ErrorMessage: sendErr.Error(),
			})
			continue
		}

		sharedAt := now
		share.Status = model.ShareStatusPublished
		share.PlatformPostID = platformPostID
		share.SharedAt = &sharedAt
		share.ErrorMessage = ""
		if err := p.shares.Update(share); err != nil {
			return delivered, err
		}
		_ = p.posts.IncrementShareCount(share.PostID)
		audit.Log(audit.ShareEvent{
			Platform: share.Platform,
			PostSlug: slug,
			Success:  true,
		})
		delivered++
	}
	return delivered, nil
}

func (p *Publisher) shareURL(post *model.Post) string {
	return p.siteURL + "/blog/" + post.Slug
}

func (p *Publisher) postSlug(postID uint) string {
	post, err := p.posts.GetByID(postID)
	if err != nil {
		return fmt.Sprintf("post-%d", postID)
	}
	return post.Slug
}

// FormatShareText renders a post into platform-sized share text with
// hashtags capped to the platform limit.
func FormatShareText(post *model.Post, spec PlatformSpec, shareURL string) string {
	hashtags := formatHashtags(post.TagList(), spec.MaxHashtags)

	var body string
	switch spec.Name {
	case PlatformTwitter:
		body = post.Title
	case PlatformMedium:
		// Medium gets the full excerpt, it has no hard limit
		body = post.Title + "\n\n" + post.Excerpt
	default:
		body = post.Title + "\n\n" + post.Excerpt
	}

	text := body
	if hashtags != "" {
		text += "\n\n" + hashtags
	}
	text += "\n" + shareURL

	if spec.MaxChars > 0 && len(text) > spec.MaxChars {
		// Trim the body, keep hashtags and URL intact
		overhead := len(text) - len(body)
		budget := spec.MaxChars - overhead
		if budget < 10 {
			budget = 10
		}
		body = utils.Truncate(body, budget)
		text = body
		if hashtags != "" {
			text += "\n\n" + hashtags
		}
		text += "\n" + shareURL
	}
	return text
}

func formatHashtags(tags []string, max int) string {
	if max <= 0 || len(tags) == 0 {
		return ""
	}
	if len(tags) > max {
		tags = tags[:max]
	}
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		cleaned := strings.ReplaceAll(strings.TrimSpace(tag), " ", "")
		if cleaned == "" {
			continue
		}
		parts = append(parts, "#"+cleaned)
	}
	return strings.Join(parts, " ")
}
