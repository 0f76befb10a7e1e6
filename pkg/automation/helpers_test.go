package automation

import (
	"context"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/openai"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
)

type memPosts struct {
	store.PostsStore
	created       []model.Post
	updated       []model.Post
	countryCounts map[uint]int64
	regionCounts  []store.RegionCount
	recentTechs   map[uint][]uint
	createdToday  int64
	slugs         map[string]bool
	weeklyStats   store.PostStats
	statsCalls    int
}

func newMemPosts() *memPosts {
	return &memPosts{
		countryCounts: map[uint]int64{},
		recentTechs:   map[uint][]uint{},
		slugs:         map[string]bool{},
	}
}

func (m *memPosts) Create(post *model.Post) error {
	post.ID = uint(len(m.created) + 1)
	m.created = append(m.created, *post)
	m.slugs[post.Slug] = true
	return nil
}

func (m *memPosts) Update(post *model.Post) error {
	m.updated = append(m.updated, *post)
	return nil
}

func (m *memPosts) SlugExists(slug string) (bool, error) {
	return m.slugs[slug], nil
}

func (m *memPosts) PublishedStatsSince(since time.Time) (*store.PostStats, error) {
	m.statsCalls++
	stats := m.weeklyStats
	return &stats, nil
}

func (m *memPosts) CountCreatedSince(since time.Time) (int64, error) {
	return m.createdToday, nil
}

func (m *memPosts) CountForCountrySince(countryID uint, since time.Time) (int64, error) {
	return m.countryCounts[countryID], nil
}

func (m *memPosts) CountByRegionSince(since time.Time) ([]store.RegionCount, error) {
	return m.regionCounts, nil
}

func (m *memPosts) RecentTechnologyIDs(countryID uint, since time.Time) ([]uint, error) {
	return m.recentTechs[countryID], nil
}

type memCountries struct {
	store.CountriesStore
	countries []model.Country
}

func (m *memCountries) List() ([]model.Country, error) {
	return m.countries, nil
}

func (m *memCountries) Regions() ([]string, error) {
	seen := map[string]bool{}
	var regions []string
	for _, c := range m.countries {
		if !seen[c.Region] {
			seen[c.Region] = true
			regions = append(regions, c.Region)
		}
	}
	return regions, nil
}

type memTechnologies struct {
	store.TechnologiesStore
	technologies []model.Technology
}

func (m *memTechnologies) List() ([]model.Technology, error) {
	return m.technologies, nil
}

func (m *memTechnologies) ListByCategories(categories []string) ([]model.Technology, error) {
	if len(categories) == 0 {
		return m.technologies, nil
	}
	wanted := map[string]bool{}
	for _, c := range categories {
		wanted[c] = true
	}
	var filtered []model.Technology
	for _, t := range m.technologies {
		if wanted[t.Category] {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

type memSettings struct {
	store.SettingsStore
	values map[string]string
}

func newMemSettings(values map[string]string) *memSettings {
	if values == nil {
		values = map[string]string{}
	}
	return &memSettings{values: values}
}

func (m *memSettings) Get(key string) (*model.Setting, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, store.ErrSettingNotFound
	}
	return &model.Setting{Key: key, Value: value, IsActive: true}, nil
}

func (m *memSettings) Set(key, value string) error {
	m.values[key] = value
	return nil
}

type memMedia struct {
	store.MediaStore
	created []model.MediaAsset
}

func (m *memMedia) Create(asset *model.MediaAsset) error {
	asset.ID = uint(len(m.created) + 1)
	m.created = append(m.created, *asset)
	return nil
}

type stubClient struct {
	content string
	err     error
	calls   int
}

func (s *stubClient) Complete(ctx context.Context, messages []openai.Message, maxTokens int) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func testCountries() []model.Country {
	return []model.Country{
		{ID: 1, Name: "Kenya", Code: "KEN", Region: "Africa", Population: 54_000_000, GDPUSD: 110_000_000_000, GDPPerCapita: 2100},
		{ID: 2, Name: "Nigeria", Code: "NGA", Region: "Africa", Population: 218_000_000, GDPUSD: 440_000_000_000, GDPPerCapita: 2050},
		{ID: 3, Name: "Vietnam", Code: "VNM", Region: "Asia", Population: 98_000_000, GDPUSD: 410_000_000_000, GDPPerCapita: 4100},
		{ID: 4, Name: "Brazil", Code: "BRA", Region: "Latin America", Population: 214_000_000, GDPUSD: 1_900_000_000_000, GDPPerCapita: 8900},
	}
}

func testTechnologies() []model.Technology {
	return []model.Technology{
		{ID: 1, Name: "Mobile Money", Category: "Fintech"},
		{ID: 2, Name: "E-Government Services", Category: "Government"},
		{ID: 3, Name: "Precision Agriculture", Category: "Agriculture"},
		{ID: 4, Name: "Machine Learning", Category: "AI/ML"},
		{ID: 5, Name: "5G Networks", Category: "Infrastructure"},
		{ID: 6, Name: "EdTech Platforms", Category: "Education"},
	}
}

func newTestGenerator(posts *memPosts, settings *memSettings, client ContentClient) *Generator {
	return NewGenerator(
		posts,
		&memCountries{countries: testCountries()},
		&memTechnologies{technologies: testTechnologies()},
		settings,
		client,
		nil,
	)
}
