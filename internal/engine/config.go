package engine

import (
	"fmt"

	"github.com/closetarchive/archivist/internal/common"
)

// Weights maps each evidence source to its share of the fused score. Any
// weight may be lowered independently; together they must not exceed 1.0.
type Weights struct {
	ModelFinal  float64
	ModelBrand  float64
	ModelVisual float64
	BrandTier   float64
	Lexical     float64
	Contextual  float64
}

// Config holds the tunable knobs of the classification engine.
type Config struct {
	Weights Weights
	// DecisionThreshold is the minimum fused score for a concrete category.
	DecisionThreshold float64
	// FastPathThreshold is the local-rule confidence that settles a product
	// without a model call.
	FastPathThreshold int
	// Concurrency is how many products are classified at once in a batch.
	Concurrency int
	// GroupDelayMillis is the pause between batch groups, to stay polite to
	// the model quota.
	GroupDelayMillis int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			ModelFinal:  0.40,
			ModelBrand:  0.15,
			ModelVisual: 0.10,
			BrandTier:   0.20,
			Lexical:     0.10,
			Contextual:  0.05,
		},
		DecisionThreshold: 25,
		FastPathThreshold: 80,
		Concurrency:       3,
		GroupDelayMillis:  1000,
	}
}

const weightSumTolerance = 1e-9

// Validate rejects misconfigured weights and thresholds up front. A bad
// weight table silently skews every classification, so startup fails instead.
func (c Config) Validate() error {
	w := c.Weights
	for name, v := range map[string]float64{
		"model_final":  w.ModelFinal,
		"model_brand":  w.ModelBrand,
		"model_visual": w.ModelVisual,
		"brand_tier":   w.BrandTier,
		"lexical":      w.Lexical,
		"contextual":   w.Contextual,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s weight is negative", common.ErrInvalidWeights, name)
		}
	}

	sum := w.ModelFinal + w.ModelBrand + w.ModelVisual + w.BrandTier + w.Lexical + w.Contextual
	if sum > 1.0+weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %.4f, want at most 1.0", common.ErrInvalidWeights, sum)
	}

	if c.DecisionThreshold < 0 || c.DecisionThreshold > 100 {
		return fmt.Errorf("%w: decision threshold %.1f outside 0-100", common.ErrInvalidWeights, c.DecisionThreshold)
	}
	if c.FastPathThreshold < 0 || c.FastPathThreshold > 100 {
		return fmt.Errorf("%w: fast-path threshold %d outside 0-100", common.ErrInvalidWeights, c.FastPathThreshold)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive", common.ErrInvalidWeights)
	}

	return nil
}
