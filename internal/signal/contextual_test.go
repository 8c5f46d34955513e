package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closetarchive/archivist/internal/model"
)

func TestContextAnalyzer(t *testing.T) {
	analyzer := NewDefaultContextAnalyzer()

	tests := []struct {
		name           string
		title          string
		wantCategory   model.Category
		wantConfidence int
	}{
		{
			name:           "military spec number with korean text",
			title:          "M-65 필드자켓 카고",
			wantCategory:   model.CategoryMilitary,
			wantConfidence: 55,
		},
		{
			name:           "spec number without dash",
			title:          "vintage m65 jacket olive",
			wantCategory:   model.CategoryMilitary,
			wantConfidence: 55,
		},
		{
			name:           "bomber spec",
			title:          "Alpha MA-1 flight jacket",
			wantCategory:   model.CategoryMilitary,
			wantConfidence: 55,
		},
		{
			name:           "workwear construction",
			title:          "double knee duck canvas pants",
			wantCategory:   model.CategoryWorkwear,
			wantConfidence: 50,
		},
		{
			name:           "technical shell",
			title:          "고어텍스 하드쉘 자켓",
			wantCategory:   model.CategoryOutdoor,
			wantConfidence: 50,
		},
		{
			name:           "japanese craft",
			title:          "sashiko 인디고 노라기",
			wantCategory:   model.CategoryJapanese,
			wantConfidence: 50,
		},
		{
			name:           "british fabric",
			title:          "harris tweed blazer",
			wantCategory:   model.CategoryBritish,
			wantConfidence: 50,
		},
		{
			name:           "no pattern",
			title:          "스트라이프 셔츠",
			wantCategory:   model.CategoryNone,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.Analyze(tt.title)
			assert.Equal(t, model.SourceContextual, result.Source)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
		})
	}
}

// A spec number must beat a fabric word in the same title.
func TestContextAnalyzerPriorityOrder(t *testing.T) {
	analyzer := NewDefaultContextAnalyzer()

	result := analyzer.Analyze("M-65 waxed cotton field jacket")
	assert.Equal(t, model.CategoryMilitary, result.Category)
	assert.Equal(t, 55, result.Confidence)
}

func TestNewContextAnalyzerRejectsBadRegex(t *testing.T) {
	_, err := NewContextAnalyzer([]ContextRule{
		{Name: "broken", Category: model.CategoryMilitary, Regex: "(unclosed"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestDefaultContextRulesCompile(t *testing.T) {
	analyzer := NewDefaultContextAnalyzer()
	assert.Equal(t, len(defaultContextRules), analyzer.RuleCount())
}
