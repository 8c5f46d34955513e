package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closetarchive/archivist/internal/model"
)

func signalOf(source model.SignalSource, category model.Category, confidence int) model.SignalResult {
	return model.SignalResult{Source: source, Category: category, Confidence: confidence}
}

func TestFuseNoSignals(t *testing.T) {
	result := fuse(nil, DefaultConfig())
	assert.Equal(t, model.CategoryArchive, result.Category)
	assert.Equal(t, 0, result.Confidence)
}

func TestFuseIgnoresAbsentVotes(t *testing.T) {
	signals := []model.SignalResult{
		signalOf(model.SourceLexical, model.CategoryNone, 0),
		signalOf(model.SourceContextual, model.CategoryNone, 0),
		signalOf(model.SourceBrandTier, model.CategoryNone, 0),
	}

	result := fuse(signals, DefaultConfig())
	assert.Equal(t, model.CategoryArchive, result.Category)
	assert.Equal(t, 0, result.Confidence)
}

// A British brand with keyword support but no model backing lands just
// under the threshold; the model's final vote pushes the same evidence over.
func TestFuseThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()

	// brand-tier 75x0.20 = 15, lexical 60x0.10 = 6; one agreement source.
	nearMiss := []model.SignalResult{
		signalOf(model.SourceBrandTier, model.CategoryBritish, 75),
		signalOf(model.SourceLexical, model.CategoryBritish, 60),
	}
	result := fuse(nearMiss, cfg)
	assert.Equal(t, model.CategoryArchive, result.Category)
	assert.Equal(t, 21, result.Confidence)

	// Adding model-final 70x0.40 = 28 and the pair bonus clears it.
	win := append(nearMiss, signalOf(model.SourceModelFinal, model.CategoryBritish, 70))
	result = fuse(win, cfg)
	assert.Equal(t, model.CategoryBritish, result.Category)
	assert.Equal(t, 55, result.Confidence)
}

// A score exactly at the threshold does not win.
func TestFuseExactThresholdFallsBack(t *testing.T) {
	cfg := DefaultConfig()

	// 15 + 6 + 4 = 25.0 exactly, single agreement source.
	signals := []model.SignalResult{
		signalOf(model.SourceBrandTier, model.CategoryBritish, 75),
		signalOf(model.SourceLexical, model.CategoryBritish, 60),
		signalOf(model.SourceContextual, model.CategoryBritish, 80),
	}

	result := fuse(signals, cfg)
	assert.Equal(t, model.CategoryArchive, result.Category)
	assert.Equal(t, 25, result.Confidence)
}

func TestFusePairAgreementBonus(t *testing.T) {
	cfg := DefaultConfig()

	// model-final 60x0.40 = 24, lexical 60x0.10 = 6, two agreement sources.
	signals := []model.SignalResult{
		signalOf(model.SourceModelFinal, model.CategoryMilitary, 60),
		signalOf(model.SourceLexical, model.CategoryMilitary, 60),
	}

	result := fuse(signals, cfg)
	assert.Equal(t, model.CategoryMilitary, result.Category)
	assert.Equal(t, 36, result.Confidence) // 30 + pair bonus 6
	assert.Equal(t, 2, result.Agreement)
}

func TestFuseTripleAgreementBonus(t *testing.T) {
	cfg := DefaultConfig()

	// 24 + 9 + 6 = 39, three agreement sources.
	signals := []model.SignalResult{
		signalOf(model.SourceModelFinal, model.CategoryMilitary, 60),
		signalOf(model.SourceModelBrand, model.CategoryMilitary, 60),
		signalOf(model.SourceLexical, model.CategoryMilitary, 60),
	}

	result := fuse(signals, cfg)
	assert.Equal(t, model.CategoryMilitary, result.Category)
	assert.Equal(t, 51, result.Confidence) // 39 + triple bonus 12
	assert.Equal(t, 3, result.Agreement)
}

// Brand-tier votes never count toward the agreement bonus.
func TestFuseBrandTierExcludedFromAgreement(t *testing.T) {
	cfg := DefaultConfig()

	signals := []model.SignalResult{
		signalOf(model.SourceModelFinal, model.CategoryMilitary, 60),
		signalOf(model.SourceBrandTier, model.CategoryMilitary, 75),
	}

	result := fuse(signals, cfg)
	assert.Equal(t, 1, result.Agreement)
	assert.Equal(t, 39, result.Confidence) // 24 + 15, no bonus
}

// The bonus is part of each category's final score, so three weak agreeing
// sources can outrank one strong brand-tier vote.
func TestFuseBonusAppliedBeforeRanking(t *testing.T) {
	cfg := DefaultConfig()

	signals := []model.SignalResult{
		signalOf(model.SourceBrandTier, model.CategoryHeritage, 75),  // 15.0
		signalOf(model.SourceModelFinal, model.CategoryMilitary, 25), // 10.0
		signalOf(model.SourceModelBrand, model.CategoryMilitary, 20), // 3.0
		signalOf(model.SourceLexical, model.CategoryMilitary, 18),    // 1.8
	}

	result := fuse(signals, cfg)
	assert.Equal(t, model.CategoryMilitary, result.Category)
	assert.Equal(t, 27, result.Confidence) // 14.8 + triple bonus 12
	assert.Equal(t, 3, result.Agreement)
}

// Raising one signal's confidence can never lower the fused score of the
// category it votes for.
func TestFuseMonotonic(t *testing.T) {
	cfg := DefaultConfig()

	previous := -1
	for confidence := 0; confidence <= 100; confidence += 10 {
		signals := []model.SignalResult{
			signalOf(model.SourceModelFinal, model.CategoryWorkwear, confidence),
			signalOf(model.SourceBrandTier, model.CategoryWorkwear, 75),
		}
		result := fuse(signals, cfg)
		require.GreaterOrEqual(t, result.Confidence, previous,
			"confidence dropped when model confidence rose to %d", confidence)
		previous = result.Confidence
	}
}

func TestFuseConfidenceCappedAtHundred(t *testing.T) {
	cfg := DefaultConfig()

	signals := []model.SignalResult{
		signalOf(model.SourceModelFinal, model.CategoryMilitary, 100),
		signalOf(model.SourceModelBrand, model.CategoryMilitary, 100),
		signalOf(model.SourceModelVisual, model.CategoryMilitary, 100),
		signalOf(model.SourceBrandTier, model.CategoryMilitary, 100),
		signalOf(model.SourceLexical, model.CategoryMilitary, 100),
		signalOf(model.SourceContextual, model.CategoryMilitary, 100),
	}

	result := fuse(signals, cfg)
	assert.Equal(t, model.CategoryMilitary, result.Category)
	assert.Equal(t, 100, result.Confidence)
}

func TestFusePrefersModelFinalReason(t *testing.T) {
	cfg := DefaultConfig()

	signals := []model.SignalResult{
		{Source: model.SourceLexical, Category: model.CategoryMilitary, Confidence: 60, Reason: "keyword match"},
		{Source: model.SourceModelFinal, Category: model.CategoryMilitary, Confidence: 80, Reason: "classic M-65 silhouette"},
	}

	result := fuse(signals, cfg)
	assert.Equal(t, "classic M-65 silhouette", result.Reason)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		mutate  func(*Config)
		name    string
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}},
		{name: "weights exceeding one", mutate: func(c *Config) { c.Weights.Lexical = 0.5 }, wantErr: true},
		{name: "one weight zeroed out", mutate: func(c *Config) { c.Weights.Contextual = 0 }},
		{name: "negative weight", mutate: func(c *Config) {
			c.Weights.Contextual = -0.05
			c.Weights.Lexical = 0.20
		}, wantErr: true},
		{name: "threshold out of range", mutate: func(c *Config) { c.DecisionThreshold = 150 }, wantErr: true},
		{name: "zero concurrency", mutate: func(c *Config) { c.Concurrency = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
