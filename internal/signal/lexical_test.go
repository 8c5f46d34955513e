package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closetarchive/archivist/internal/model"
)

func TestLexicalScorer(t *testing.T) {
	scorer := NewLexicalScorer()

	tests := []struct {
		name           string
		title          string
		wantCategory   model.Category
		wantConfidence int
	}{
		{
			name:           "single keyword",
			title:          "빈티지 니트 스웨터",
			wantCategory:   model.CategoryHeritage,
			wantConfidence: 20,
		},
		{
			name:           "two keywords",
			title:          "밀리터리 카고 팬츠",
			wantCategory:   model.CategoryMilitary,
			wantConfidence: 40,
		},
		{
			name:           "capped at sixty",
			title:          "MILITARY CAMO CARGO COMBAT FIELD 자켓",
			wantCategory:   model.CategoryMilitary,
			wantConfidence: 60,
		},
		{
			name:           "korean workwear",
			title:          "칼하트 더블니 페인터 팬츠 작업복",
			wantCategory:   model.CategoryWorkwear,
			wantConfidence: 40,
		},
		{
			name:           "no match",
			title:          "나이키 운동화 270mm",
			wantCategory:   model.CategoryNone,
			wantConfidence: 0,
		},
		{
			name:           "case insensitive",
			title:          "selvedge indigo denim",
			wantCategory:   model.CategoryJapanese,
			wantConfidence: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.title)
			assert.Equal(t, model.SourceLexical, result.Source)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
		})
	}
}

func TestLexicalScorerRecordsMatchedKeywords(t *testing.T) {
	scorer := NewLexicalScorer()

	result := scorer.Score("브리티시 타탄 체크 셔츠")
	require.Equal(t, model.CategoryBritish, result.Category)
	assert.Contains(t, result.MatchedKeywords, "브리티시")
	assert.Contains(t, result.MatchedKeywords, "타탄")
	assert.NotEmpty(t, result.Reason)
}

// Outdoor and unisex carry no keyword lists on purpose: they are reachable
// only through brand and model evidence. This pins that down so a keyword
// list is not added by accident.
func TestLexicalScorerCoversFiveCategories(t *testing.T) {
	scorer := NewLexicalScorer()

	assert.Len(t, scorer.keywords, 5)
	assert.NotContains(t, scorer.keywords, model.CategoryOutdoor)
	assert.NotContains(t, scorer.keywords, model.CategoryUnisex)

	for _, category := range []model.Category{
		model.CategoryMilitary,
		model.CategoryWorkwear,
		model.CategoryJapanese,
		model.CategoryHeritage,
		model.CategoryBritish,
	} {
		assert.NotEmpty(t, scorer.keywords[category], "%s should have keywords", category)
	}
}
