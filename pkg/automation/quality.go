package automation

import (
	"strings"

	"github.com/CryptoTanAI/TechBlog/pkg/utils"
)

// DefaultQualityThreshold is used when the setting is missing or
// malformed.
const DefaultQualityThreshold = 0.8

// DefaultTargetWordCount is the article length the generator asks for
// and the quality score measures against.
const DefaultTargetWordCount = 800

// MinTitleLength is the shortest title considered substantive.
const MinTitleLength = 20

// qualityKeywords are the development-economics terms a substantive
// article is expected to touch on.
var qualityKeywords = []string{"gdp", "economy", "technology", "development"}

// Weights for the three quality components.
const (
	weightLength   = 0.5
	weightKeywords = 0.3
	weightTitle    = 0.2
)

// QualityReport breaks a score down into its components.
type QualityReport struct {
	Score           float64 `json:"score"`
	WordCount       int     `json:"word_count"`
	LengthScore     float64 `json:"length_score"`
	KeywordsMatched int     `json:"keywords_matched"`
	KeywordScore    float64 `json:"keyword_score"`
	TitleScore      float64 `json:"title_score"`
}

// EvaluateQuality scores an article in [0, 1]. Length counts for half
// the score, keyword coverage for 30% and title length for 20%.
func EvaluateQuality(title, content string, targetWords int) QualityReport {
	if targetWords <= 0 {
		targetWords = DefaultTargetWordCount
	}

	words := utils.WordCount(content)
	lengthScore := float64(words) / float64(targetWords)
	if lengthScore > 1 {
		lengthScore = 1
	}

	lower := strings.ToLower(content)
	matched := 0
	for _, kw := range qualityKeywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}
	keywordScore := float64(matched) / float64(len(qualityKeywords))

	titleScore := 0.0
	if len(strings.TrimSpace(title)) >= MinTitleLength {
		titleScore = 1.0
	}

	return QualityReport{
		Score:           weightLength*lengthScore + weightKeywords*keywordScore + weightTitle*titleScore,
		WordCount:       words,
		LengthScore:     lengthScore,
		KeywordsMatched: matched,
		KeywordScore:    keywordScore,
		TitleScore:      titleScore,
	}
}
