package automation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/audit"
	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/openai"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
	"github.com/CryptoTanAI/TechBlog/pkg/utils"
)

// ContentClient generates article text. Satisfied by *openai.Client.
type ContentClient interface {
	Complete(ctx context.Context, messages []openai.Message, maxTokens int) (string, error)
}

// Generator assembles generated blog posts end to end.
type Generator struct {
	posts        store.PostsStore
	countries    store.CountriesStore
	technologies store.TechnologiesStore
	settings     store.SettingsStore
	client       ContentClient
	logger       *slog.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(
	posts store.PostsStore,
	countries store.CountriesStore,
	technologies store.TechnologiesStore,
	settings store.SettingsStore,
	client ContentClient,
	logger *slog.Logger,
) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		posts:        posts,
		countries:    countries,
		technologies: technologies,
		settings:     settings,
		client:       client,
		logger:       logger,
	}
}

// Result is the outcome of one generation run.
type Result struct {
	Post      *model.Post   `json:"post"`
	Report    QualityReport `json:"quality"`
	Published bool          `json:"published"`
}

// GeneratePost runs the full pipeline and persists the result. Posts
// below the quality threshold are saved as drafts. trigger is recorded
// in the audit log ("scheduler" or "manual").
func (g *Generator) GeneratePost(ctx context.Context, trigger string) (*Result, error) {
	return g.GeneratePostFor(ctx, trigger, 0, 0)
}

// GeneratePostFor is GeneratePost with optional manual overrides. A
// zero countryID or technologyID falls back to the configured
// selection strategy.
func (g *Generator) GeneratePostFor(ctx context.Context, trigger string, countryID, technologyID uint) (*Result, error) {
	now := time.Now().UTC()

	country, technology, err := g.resolve(now, countryID, technologyID)
	if err != nil {
		return nil, err
	}

	result, err := g.compose(ctx, country, technology)
	if err != nil {
		audit.Log(audit.GenerateEvent{
			Trigger:      trigger,
			Country:      country.Name,
			Technology:   technology.Name,
			Success:      false,
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	post := result.Post
	if result.Published {
		publishedAt := now
		post.Status = model.PostStatusPublished
		post.PublishedAt = &publishedAt
	} else {
		post.Status = model.PostStatusDraft
	}

	if err := g.posts.Create(post); err != nil {
		return nil, fmt.Errorf("failed to save generated post: %w", err)
	}

	g.logger.Info("generated post",
		"slug", post.Slug,
		"country", country.Name,
		"technology", technology.Name,
		"quality", result.Report.Score,
		"published", result.Published,
	)
	audit.Log(audit.GenerateEvent{
		Trigger:      trigger,
		Country:      country.Name,
		Technology:   technology.Name,
		PostSlug:     post.Slug,
		QualityScore: result.Report.Score,
		Published:    result.Published,
		Success:      true,
	})
	return result, nil
}

// Preview runs the pipeline without saving anything. A zero countryID
// or technologyID falls back to the configured selection strategy.
func (g *Generator) Preview(ctx context.Context, countryID, technologyID uint) (*Result, error) {
	country, technology, err := g.resolve(time.Now().UTC(), countryID, technologyID)
	if err != nil {
		return nil, err
	}
	return g.compose(ctx, country, technology)
}

// resolve picks the country and technology for a run, honoring manual
// overrides when given.
func (g *Generator) resolve(now time.Time, countryID, technologyID uint) (*model.Country, *model.Technology, error) {
	var country *model.Country
	var err error
	if countryID != 0 {
		country, err = g.countries.GetByID(countryID)
	} else {
		strategy := g.settingOr(model.SettingRotationStrategy, StrategyBalancedRegional)
		maxPerMonth := g.settingInt(model.SettingMaxPostsPerCountry, DefaultMaxPostsPerCountryPerMonth)
		country, err = g.SelectCountry(strategy, maxPerMonth, now)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("country selection failed: %w", err)
	}

	var technology *model.Technology
	if technologyID != 0 {
		technology, err = g.technologies.GetByID(technologyID)
	} else {
		technology, err = g.SelectTechnology(country, now)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("technology selection failed: %w", err)
	}
	return country, technology, nil
}

// compose generates the article body and assembles an unsaved post.
func (g *Generator) compose(ctx context.Context, country *model.Country, technology *model.Technology) (*Result, error) {
	targetWords := g.settingInt(model.SettingTargetPostLength, DefaultTargetWordCount)
	threshold := g.settingFloat(model.SettingQualityThreshold, DefaultQualityThreshold)

	title := fmt.Sprintf("%s in %s: Technology Driving Development", technology.Name, country.Name)

	content, err := g.generateContent(ctx, country, technology, title, targetWords)
	if err != nil {
		g.logger.Warn("content generation failed, using fallback",
			"country", country.Name, "technology", technology.Name, "error", err)
		content = fallbackContent(country, technology)
	}

	report := EvaluateQuality(title, content, targetWords)

	slug, err := g.uniqueSlug(title)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:           title,
		Slug:            slug,
		Country:         country,
		Technology:      technology,
		Content:         content,
		Excerpt:         makeExcerpt(content),
		CountryID:       country.ID,
		TechnologyID:    technology.ID,
		MetaDescription: utils.Truncate(makeExcerpt(content), 160),
		MetaKeywords:    strings.Join([]string{technology.Name, country.Name, country.Region, "development"}, ", "),
		QualityScore:    report.Score,
		WordCount:       report.WordCount,
		ReadingTime:     utils.ReadingTime(content),
	}
	post.SetTags([]string{technology.Name, country.Name, country.Region, technology.Category})

	return &Result{
		Post:      post,
		Report:    report,
		Published: report.Score >= threshold,
	}, nil
}

func (g *Generator) generateContent(ctx context.Context, country *model.Country, technology *model.Technology, title string, targetWords int) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("no content client configured")
	}

	research := researchContext(country)
	prompt := fmt.Sprintf(`Write a blog article titled %q about %s in %s.

Country context:
%s

Requirements:
- Around %d words, in markdown with ## section headings
- Cover the current state, concrete initiatives, challenges and outlook
- Ground claims in the country's economy, GDP and development status
- Aim at a general audience interested in technology in the Global South`,
		title, technology.Name, country.Name, research, targetWords)

	messages := []openai.Message{
		{Role: "system", Content: "You are a technology journalist covering digital development in emerging economies."},
		{Role: "user", Content: prompt},
	}
	// Roughly 1.5 tokens per word plus headroom
	maxTokens := targetWords*2 + 500
	return g.client.Complete(ctx, messages, maxTokens)
}

// researchContext summarizes what the database knows about a country
// for the generation prompt.
func researchContext(country *model.Country) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "- Region: %s\n", country.Region)
	if country.Population > 0 {
		fmt.Fprintf(&sb, "- Population: %d\n", country.Population)
	}
	if country.GDPUSD > 0 {
		fmt.Fprintf(&sb, "- GDP: $%d\n", country.GDPUSD)
	}
	if country.GDPPerCapita > 0 {
		fmt.Fprintf(&sb, "- GDP per capita: $%.0f (%s)\n", country.GDPPerCapita, country.DevelopmentStatus())
	}
	fmt.Fprintf(&sb, "- Digital readiness: %s", country.DigitalReadiness())
	return sb.String()
}

// fallbackContent produces a short templated article when the API is
// unavailable. It deliberately scores below the publish threshold so it
// lands in drafts.
func fallbackContent(country *model.Country, technology *model.Technology) string {
	return fmt.Sprintf(`## %s in %s

%s is an emerging area of technology adoption in %s. This draft was
generated without live research data and needs editorial review before
publication.

## Economic Context

%s is part of the %s region. Its economy and development trajectory
shape how quickly new technology spreads.

## Next Steps

An editor should expand this draft with current initiatives, data and
sources before publishing.`,
		technology.Name, country.Name,
		technology.Name, country.Name,
		country.Name, country.Region)
}

func makeExcerpt(content string) string {
	// First non-heading paragraph
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" || strings.HasPrefix(para, "#") {
			continue
		}
		return utils.Truncate(strings.ReplaceAll(para, "\n", " "), 300)
	}
	return utils.Truncate(content, 300)
}

func (g *Generator) uniqueSlug(title string) (string, error) {
	slug := utils.Slugify(title)
	taken, err := g.posts.SlugExists(slug)
	if err != nil {
		return "", err
	}
	if !taken {
		return slug, nil
	}
	return utils.UniqueSlug(slug)
}

func (g *Generator) settingOr(key, fallback string) string {
	setting, err := g.settings.Get(key)
	if err != nil || setting.Value == "" {
		return fallback
	}
	return setting.Value
}

func (g *Generator) settingInt(key string, fallback int) int {
	raw := g.settingOr(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (g *Generator) settingFloat(key string, fallback float64) float64 {
	raw := g.settingOr(key, "")
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f > 1 {
		return fallback
	}
	return f
}
