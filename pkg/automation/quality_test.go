package automation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func substantiveArticle(words int) string {
	para := "The economy benefits as technology adoption accelerates development and GDP growth continues. "
	var sb strings.Builder
	for sb.Len() < words*11 {
		sb.WriteString(para)
	}
	return sb.String()
}

func TestEvaluateQualityFullMarks(t *testing.T) {
	report := EvaluateQuality(
		"Fintech in Kenya: Technology Driving Development",
		substantiveArticle(900),
		DefaultTargetWordCount,
	)

	assert.InDelta(t, 1.0, report.Score, 0.01)
	assert.Equal(t, 4, report.KeywordsMatched)
	assert.Equal(t, 1.0, report.TitleScore)
	assert.GreaterOrEqual(t, report.WordCount, DefaultTargetWordCount)
}

func TestEvaluateQualityShortContent(t *testing.T) {
	report := EvaluateQuality("Short", "A few words only.", DefaultTargetWordCount)

	assert.Less(t, report.Score, DefaultQualityThreshold)
	assert.Equal(t, 0.0, report.TitleScore)
	assert.Equal(t, 0, report.KeywordsMatched)
}

func TestEvaluateQualityPartialKeywords(t *testing.T) {
	content := strings.Repeat("The economy and technology sectors are growing. ", 120)
	report := EvaluateQuality("A Reasonably Long Article Title", content, DefaultTargetWordCount)

	assert.Equal(t, 2, report.KeywordsMatched)
	assert.InDelta(t, 0.5, report.KeywordScore, 0.001)
}

func TestEvaluateQualityLengthCapped(t *testing.T) {
	report := EvaluateQuality("A Reasonably Long Article Title", substantiveArticle(5000), 800)
	assert.Equal(t, 1.0, report.LengthScore)
}
