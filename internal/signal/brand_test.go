package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closetarchive/archivist/internal/brandbook"
	"github.com/closetarchive/archivist/internal/model"
)

func TestBrandScorer(t *testing.T) {
	scorer := NewBrandScorer(brandbook.New())

	tests := []struct {
		name         string
		title        string
		wantCategory model.Category
		wantBrand    string
	}{
		{
			name:         "military brand",
			title:        "알파인더스트리 MA-1 봄버",
			wantCategory: model.CategoryMilitary,
			wantBrand:    "Alpha Industries",
		},
		{
			name:         "workwear brand english",
			title:        "Carhartt chore jacket",
			wantCategory: model.CategoryWorkwear,
			wantBrand:    "Carhartt",
		},
		{
			name:         "british brand korean alias",
			title:        "바버 왁스드 자켓",
			wantCategory: model.CategoryBritish,
			wantBrand:    "Barbour",
		},
		{
			name:         "japan brand",
			title:        "캐피탈 보로 자켓",
			wantCategory: model.CategoryJapanese,
			wantBrand:    "Kapital",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.title)
			require.Equal(t, model.SourceBrandTier, result.Source)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, 75, result.Confidence)
			assert.Equal(t, tt.wantBrand, result.Brand)
			assert.True(t, result.HasVote())
		})
	}
}

func TestBrandScorerOtherTierGivesNoVote(t *testing.T) {
	scorer := NewBrandScorer(brandbook.New())

	result := scorer.Score("자라 베이직 셔츠")
	assert.False(t, result.HasVote())
	assert.Equal(t, 0, result.Confidence)
	// The brand is still reported so the model prompt can mention it.
	assert.Equal(t, "Zara", result.Brand)
}

func TestBrandScorerUnknownBrand(t *testing.T) {
	scorer := NewBrandScorer(brandbook.New())

	result := scorer.Score("무명 브랜드 셔츠")
	assert.False(t, result.HasVote())
	assert.Empty(t, result.Brand)
}
