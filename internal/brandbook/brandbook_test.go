package brandbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	book := New()

	tests := []struct {
		name          string
		query         string
		wantCanonical string
		wantTier      Tier
		wantFound     bool
	}{
		{name: "canonical name", query: "Barbour", wantCanonical: "Barbour", wantTier: TierBritish, wantFound: true},
		{name: "uppercase", query: "CARHARTT", wantCanonical: "Carhartt", wantTier: TierWorkwear, wantFound: true},
		{name: "korean alias", query: "칼하트", wantCanonical: "Carhartt", wantTier: TierWorkwear, wantFound: true},
		{name: "surrounding whitespace", query: "  visvim  ", wantCanonical: "Visvim", wantTier: TierJapan, wantFound: true},
		{name: "unknown", query: "no such brand", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := book.Lookup(tt.query)
			require.Equal(t, tt.wantFound, ok)
			if !tt.wantFound {
				return
			}
			assert.Equal(t, tt.wantCanonical, info.Canonical)
			assert.Equal(t, tt.wantTier, info.Tier)
		})
	}
}

func TestMatchPrefersLongerKeys(t *testing.T) {
	book := newFromTable(map[string]BrandInfo{
		"POLO":              {Canonical: "Polo", Tier: TierHeritage},
		"POLO RALPH LAUREN": {Canonical: "Polo Ralph Lauren", Tier: TierHeritage},
	})

	info, ok := book.Match("vintage POLO RALPH LAUREN oxford shirt")
	require.True(t, ok)
	assert.Equal(t, "Polo Ralph Lauren", info.Canonical)

	info, ok = book.Match("90s polo knit")
	require.True(t, ok)
	assert.Equal(t, "Polo", info.Canonical)
}

func TestMatchSkipsShortKeys(t *testing.T) {
	book := newFromTable(map[string]BrandInfo{
		"GAP": {Canonical: "Gap", Aliases: []string{"GP"}, Tier: TierOther},
	})

	// Two-letter aliases stay out of the title scan.
	_, ok := book.Match("vintage gp sweatshirt")
	assert.False(t, ok)

	info, ok := book.Match("GAP hoodie")
	require.True(t, ok)
	assert.Equal(t, "Gap", info.Canonical)
}

func TestMatchInsideKoreanTitle(t *testing.T) {
	book := New()

	info, ok := book.Match("(국내배송) 버버리 트렌치코트 빈티지")
	require.True(t, ok)
	assert.Equal(t, "Burberry", info.Canonical)
	assert.Equal(t, TierBritish, info.Tier)
}

func TestSize(t *testing.T) {
	book := New()
	// Canonical names plus aliases, deduplicated.
	assert.Greater(t, book.Size(), 100)
}
