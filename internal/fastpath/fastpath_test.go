package fastpath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/closetarchive/archivist/internal/model"
)

func TestClassify(t *testing.T) {
	classifier := New()

	tests := []struct {
		name           string
		title          string
		wantCategory   model.Category
		wantConfidence int
	}{
		{
			name:           "brand hit alone",
			title:          "ROTHCO 빈티지 팬츠", // keyword 빈티지 belongs to heritage, brand outweighs it
			wantCategory:   model.CategoryMilitary,
			wantConfidence: 50,
		},
		{
			name:           "brand plus keywords",
			title:          "칼하트 더블니 워크웨어 팬츠",
			wantCategory:   model.CategoryWorkwear,
			wantConfidence: 70,
		},
		{
			name:           "keywords only",
			title:          "M-65 필드자켓 카고",
			wantCategory:   model.CategoryMilitary,
			wantConfidence: 30,
		},
		{
			name:           "single keyword meets minimum",
			title:          "타탄 머플러",
			wantCategory:   model.CategoryBritish,
			wantConfidence: 10,
		},
		{
			name:           "no signal",
			title:          "기본 무지 반팔티",
			wantCategory:   model.CategoryNone,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(tt.title)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
		})
	}
}

func TestClassifyConfidenceCappedAtHundred(t *testing.T) {
	classifier := New()

	result := classifier.Classify("ALPHA MA-1 M-65 BDU MILITARY CAMO CARGO FIELD JACKET 밀리터리")
	assert.Equal(t, model.CategoryMilitary, result.Category)
	assert.LessOrEqual(t, result.Confidence, 100)
	assert.GreaterOrEqual(t, result.Confidence, 80)
}
