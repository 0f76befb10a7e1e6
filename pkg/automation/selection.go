package automation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// Country rotation strategies.
const (
	StrategyRandom           = "random"
	StrategyRegionalFocus    = "regional_focus"
	StrategyBalancedRegional = "balanced_regional"
)

// DefaultMaxPostsPerCountryPerMonth caps how often one country is
// covered.
const DefaultMaxPostsPerCountryPerMonth = 4

// technologyCooldown is how long a technology is avoided for a country
// after it has been covered.
const technologyCooldown = 30 * 24 * time.Hour

// regionCategories maps a region to the technology categories its
// coverage leans toward.
var regionCategories = map[string][]string{
	"Africa":        {"Fintech", "Government", "Agriculture"},
	"Asia":          {"AI/ML", "Infrastructure", "Government"},
	"Latin America": {"Fintech", "Education", "Energy"},
}

var defaultCategories = []string{"AI/ML", "Fintech", "Infrastructure"}

// SelectCountry picks the next country to cover. Countries at the
// monthly cap are excluded under every strategy.
func (g *Generator) SelectCountry(strategy string, maxPerMonth int, now time.Time) (*model.Country, error) {
	if maxPerMonth <= 0 {
		maxPerMonth = DefaultMaxPostsPerCountryPerMonth
	}

	countries, err := g.countries.List()
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("no countries available")
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	eligible := make([]model.Country, 0, len(countries))
	for _, c := range countries {
		count, err := g.posts.CountForCountrySince(c.ID, monthStart)
		if err != nil {
			return nil, err
		}
		if count < int64(maxPerMonth) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		// Every country is at the cap; fall back to the full list so a
		// run still produces something.
		eligible = countries
	}

	switch strategy {
	case StrategyRegionalFocus:
		return g.pickRegionalFocus(eligible, now)
	case StrategyBalancedRegional:
		return g.pickBalancedRegional(eligible, monthStart)
	default:
		return pickRandom(eligible), nil
	}
}

// pickRegionalFocus rotates through regions week by week so coverage
// cycles the globe.
func (g *Generator) pickRegionalFocus(eligible []model.Country, now time.Time) (*model.Country, error) {
	regions, err := g.countries.Regions()
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return pickRandom(eligible), nil
	}

	_, week := now.ISOWeek()
	focus := regions[week%len(regions)]

	inFocus := filterByRegion(eligible, focus)
	if len(inFocus) == 0 {
		return pickRandom(eligible), nil
	}
	return pickRandom(inFocus), nil
}

// pickBalancedRegional favors the region with the fewest posts this
// month.
func (g *Generator) pickBalancedRegional(eligible []model.Country, monthStart time.Time) (*model.Country, error) {
	counts, err := g.posts.CountByRegionSince(monthStart)
	if err != nil {
		return nil, err
	}
	byRegion := make(map[string]int64, len(counts))
	for _, rc := range counts {
		byRegion[rc.Region] = rc.Count
	}

	var (
		bestRegion string
		bestCount  int64 = -1
	)
	seen := map[string]bool{}
	for _, c := range eligible {
		if seen[c.Region] {
			continue
		}
		seen[c.Region] = true
		count := byRegion[c.Region]
		if bestCount == -1 || count < bestCount {
			bestRegion = c.Region
			bestCount = count
		}
	}

	candidates := filterByRegion(eligible, bestRegion)
	if len(candidates) == 0 {
		return pickRandom(eligible), nil
	}
	return pickRandom(candidates), nil
}

// SelectTechnology picks a technology for the country, preferring the
// region's categories and skipping anything covered for this country in
// the last 30 days.
func (g *Generator) SelectTechnology(country *model.Country, now time.Time) (*model.Technology, error) {
	categories, ok := regionCategories[country.Region]
	if !ok {
		categories = defaultCategories
	}

	recentIDs, err := g.posts.RecentTechnologyIDs(country.ID, now.Add(-technologyCooldown))
	if err != nil {
		return nil, err
	}
	recent := make(map[uint]bool, len(recentIDs))
	for _, id := range recentIDs {
		recent[id] = true
	}

	preferred, err := g.technologies.ListByCategories(categories)
	if err != nil {
		return nil, err
	}
	if tech := pickFresh(preferred, recent); tech != nil {
		return tech, nil
	}

	// Nothing fresh in the preferred categories; widen to all.
	all, err := g.technologies.List()
	if err != nil {
		return nil, err
	}
	if tech := pickFresh(all, recent); tech != nil {
		return tech, nil
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no technologies available")
	}
	// Everything is on cooldown; reuse is better than skipping the day.
	tech := all[rand.Intn(len(all))]
	return &tech, nil
}

func pickFresh(technologies []model.Technology, recent map[uint]bool) *model.Technology {
	fresh := make([]model.Technology, 0, len(technologies))
	for _, t := range technologies {
		if !recent[t.ID] {
			fresh = append(fresh, t)
		}
	}
	if len(fresh) == 0 {
		return nil
	}
	t := fresh[rand.Intn(len(fresh))]
	return &t
}

func pickRandom(countries []model.Country) *model.Country {
	c := countries[rand.Intn(len(countries))]
	return &c
}

func filterByRegion(countries []model.Country, region string) []model.Country {
	var filtered []model.Country
	for _, c := range countries {
		if c.Region == region {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
