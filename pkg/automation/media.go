package automation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
	"github.com/CryptoTanAI/TechBlog/pkg/utils"
)

// ImageClient renders one image from a prompt and returns its public
// URL. Real backends (DALL-E, Stable Diffusion) satisfy this; passing
// nil to NewMediaGenerator installs a simulated client that records
// URLs under /static/media/images without calling out.
type ImageClient interface {
	GenerateImage(ctx context.Context, prompt, fileName string) (string, error)
}

type simulatedImages struct{}

func (simulatedImages) GenerateImage(_ context.Context, _ string, fileName string) (string, error) {
	return "/static/media/images/" + fileName, nil
}

// Infographic criteria: long article that actually talks about numbers.
const infographicMinWords = 1200

var infographicKeywords = []string{"statistics", "data", "percent", "growth", "increase"}

// socialCardSizes are the per-platform share image dimensions.
var socialCardSizes = []struct {
	platform string
	display  string
	width    int
	height   int
}{
	{"twitter", "Twitter", 1200, 630},
	{"linkedin", "LinkedIn", 1200, 627},
	{"instagram", "Instagram", 1080, 1080},
}

// MediaGenerator creates the visual assets for a generated post: a
// featured image, technology and country illustrations, an infographic
// for data-heavy articles, and per-platform social cards. Assets are
// recorded as media rows on the post.
type MediaGenerator struct {
	media  store.MediaStore
	posts  store.PostsStore
	client ImageClient
	logger *slog.Logger
}

// NewMediaGenerator creates a MediaGenerator. A nil client simulates
// image generation.
func NewMediaGenerator(media store.MediaStore, posts store.PostsStore, client ImageClient, logger *slog.Logger) *MediaGenerator {
	if client == nil {
		client = simulatedImages{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MediaGenerator{
		media:  media,
		posts:  posts,
		client: client,
		logger: logger,
	}
}

type mediaPlan struct {
	assetType string
	fileName  string
	prompt    string
	altText   string
	caption   string
	featured  bool
}

// GeneratePostMedia generates and records all assets for one post.
// Individual asset failures are logged and skipped; the rest of the set
// is still produced.
func (g *MediaGenerator) GeneratePostMedia(ctx context.Context, post *model.Post, country *model.Country, technology *model.Technology) ([]model.MediaAsset, error) {
	stamp := time.Now().UTC().Format("20060102_150405")
	code := strings.ToLower(country.Code)
	techSlug := utils.Slugify(technology.Name)

	plans := []mediaPlan{
		{
			assetType: "image",
			fileName:  fmt.Sprintf("featured_%s_%s_%s.png", code, techSlug, stamp),
			prompt:    featuredImagePrompt(country, technology),
			altText:   fmt.Sprintf("%s transformation in %s", technology.Name, country.Name),
			caption:   fmt.Sprintf("How %s is transforming %s's economy and society", technology.Name, country.Name),
			featured:  true,
		},
		{
			assetType: "image",
			fileName:  fmt.Sprintf("tech_%s_%s.png", techSlug, stamp),
			prompt:    technologyPrompt(technology),
			altText:   fmt.Sprintf("%s technology illustration", technology.Name),
			caption:   fmt.Sprintf("Understanding %s technology", technology.Name),
		},
		{
			assetType: "image",
			fileName:  fmt.Sprintf("country_%s_%s.png", code, stamp),
			prompt:    countryPrompt(country),
			altText:   fmt.Sprintf("Technology landscape in %s", country.Name),
			caption:   fmt.Sprintf("%s's digital development context", country.Name),
		},
	}
	if needsInfographic(post) {
		plans = append(plans, mediaPlan{
			assetType: "infographic",
			fileName:  fmt.Sprintf("infographic_%s_%s_%s.png", code, techSlug, stamp),
			prompt:    infographicPrompt(country, technology),
			altText:   fmt.Sprintf("%s in %s: key statistics", technology.Name, country.Name),
			caption:   fmt.Sprintf("Key data on %s adoption in %s", technology.Name, country.Name),
		})
	}
	for _, card := range socialCardSizes {
		plans = append(plans, mediaPlan{
			assetType: "image",
			fileName:  fmt.Sprintf("social_%s_%s_%s.png", card.platform, code, stamp),
			prompt:    socialCardPrompt(country, technology, post.Title, card.platform, card.width, card.height),
			altText:   fmt.Sprintf("%s - %s share image", post.Title, card.platform),
			caption:   fmt.Sprintf("Share on %s", card.display),
		})
	}

	var assets []model.MediaAsset
	for i, plan := range plans {
		url, err := g.client.GenerateImage(ctx, plan.prompt, plan.fileName)
		if err != nil {
			g.logger.Warn("image generation failed",
				"file", plan.fileName, "post", post.Slug, "error", err)
			continue
		}

		asset := model.MediaAsset{
			PostID:     post.ID,
			AssetType:  plan.assetType,
			FileURL:    url,
			FileName:   plan.fileName,
			AltText:    plan.altText,
			Caption:    plan.caption,
			OrderIndex: i,
			IsFeatured: plan.featured,
		}
		if err := g.media.Create(&asset); err != nil {
			g.logger.Warn("failed to record media asset",
				"file", plan.fileName, "post", post.Slug, "error", err)
			continue
		}
		assets = append(assets, asset)

		if plan.featured && post.FeaturedImageURL == "" {
			post.FeaturedImageURL = url
			if err := g.posts.Update(post); err != nil {
				g.logger.Warn("failed to set featured image",
					"post", post.Slug, "error", err)
			}
		}
	}

	g.logger.Info("generated media assets", "post", post.Slug, "count", len(assets))
	return assets, nil
}

// needsInfographic reports whether the article is long and data-heavy
// enough to warrant one.
func needsInfographic(post *model.Post) bool {
	if post.WordCount <= infographicMinWords {
		return false
	}
	content := strings.ToLower(post.Content)
	for _, keyword := range infographicKeywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}

func featuredImagePrompt(country *model.Country, technology *model.Technology) string {
	return fmt.Sprintf(`Professional featured image for a blog post about %s in %s.
Show modern technology and digital transformation in a %s context, with
economic growth and development themes. Style: modern, clean,
optimistic. Blue, purple and cyan gradients. 16:9 landscape, no text.`,
		technology.Name, country.Name, country.Name)
}

func technologyPrompt(technology *model.Technology) string {
	return fmt.Sprintf(`Clean conceptual illustration of %s (%s category).
Abstract, professional, suitable for a technology blog. No text.`,
		technology.Name, technology.Category)
}

func countryPrompt(country *model.Country) string {
	return fmt.Sprintf(`Illustration of the technology landscape in %s (%s region).
Blend recognizable cultural elements with modern digital infrastructure.
Professional and optimistic. No text.`,
		country.Name, country.Region)
}

func infographicPrompt(country *model.Country, technology *model.Technology) string {
	return fmt.Sprintf(`Infographic layout about %s adoption in %s: adoption
growth, economic impact and key statistics. Clean data visualization
style with charts and icons.`,
		technology.Name, country.Name)
}

func socialCardPrompt(country *model.Country, technology *model.Technology, title, platform string, width, height int) string {
	return fmt.Sprintf(`Social media card for %s (%dx%d) promoting the article
%q about %s in %s. Bold, eye-catching, suitable as a link preview.`,
		platform, width, height, title, technology.Name, country.Name)
}
