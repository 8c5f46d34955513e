package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/closetarchive/archivist/internal/model"
)

// Agreement bonus: independent sources landing on the same category is
// stronger evidence than any single score suggests.
const (
	agreementBonusTriple = 12
	agreementBonusPair   = 6
)

// agreementSources are the sources counted for the bonus. Brand-tier and
// contextual are excluded: both are driven by the same title tokens as the
// lexical scorer, so counting them would reward correlated evidence.
var agreementSources = map[model.SignalSource]bool{
	model.SourceModelFinal:  true,
	model.SourceModelBrand:  true,
	model.SourceModelVisual: true,
	model.SourceLexical:     true,
}

// fusedResult is the outcome of weighing every signal.
type fusedResult struct {
	Category   model.Category
	Reason     string
	Confidence int
	Agreement  int // voting agreement sources behind the winner
}

// fuse combines the signals into one decision. Each voting signal adds
// weight x confidence to its category; the best category wins if it clears
// the decision threshold, otherwise the product falls back to the general
// archive with the fused score as its confidence.
func fuse(signals []model.SignalResult, cfg Config) fusedResult {
	scores := make(map[model.Category]float64)
	contributors := make(map[model.Category][]model.SignalResult)

	for _, s := range signals {
		if !s.HasVote() {
			continue
		}
		scores[s.Category] += weightFor(s.Source, cfg.Weights) * float64(s.Confidence)
		contributors[s.Category] = append(contributors[s.Category], s)
	}

	if len(scores) == 0 {
		return fusedResult{
			Category: model.CategoryArchive,
			Reason:   "no signal produced a vote",
		}
	}

	// The bonus lands on every category before ranking, so convergent
	// minority evidence can outrank a single stronger vote.
	agreement := make(map[model.Category]int, len(contributors))
	for cat, sigs := range contributors {
		n := 0
		for _, s := range sigs {
			if agreementSources[s.Source] {
				n++
			}
		}
		agreement[cat] = n
		switch {
		case n >= 3:
			scores[cat] += agreementBonusTriple
		case n == 2:
			scores[cat] += agreementBonusPair
		}
	}

	best := pickBest(scores)
	score := scores[best]

	confidence := int(math.Round(math.Min(score, 100)))

	// Strictly above the threshold wins; a product that only ties falls back
	// to the general archive, never to NONE.
	if score <= cfg.DecisionThreshold {
		return fusedResult{
			Category:   model.CategoryArchive,
			Confidence: confidence,
			Agreement:  agreement[best],
			Reason: fmt.Sprintf("best candidate %s scored %d, below threshold %.0f",
				best, confidence, cfg.DecisionThreshold),
		}
	}

	return fusedResult{
		Category:   best,
		Confidence: confidence,
		Agreement:  agreement[best],
		Reason:     buildReason(contributors[best]),
	}
}

// pickBest returns the highest-scoring category, breaking ties by the fixed
// category order so fusion stays deterministic.
func pickBest(scores map[model.Category]float64) model.Category {
	type entry struct {
		category model.Category
		score    float64
	}

	entries := make([]entry, 0, len(scores))
	for c, s := range scores {
		entries = append(entries, entry{category: c, score: s})
	}

	order := make(map[model.Category]int, len(model.Categories()))
	for i, c := range model.Categories() {
		order[c] = i
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return order[entries[i].category] < order[entries[j].category]
	})

	return entries[0].category
}

// buildReason prefers the model's own final reasoning; without it the
// per-signal reasons are concatenated.
func buildReason(signals []model.SignalResult) string {
	parts := make([]string, 0, len(signals))
	for _, s := range signals {
		if s.Source == model.SourceModelFinal && s.Reason != "" {
			return s.Reason
		}
		if s.Reason != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", s.Source, s.Reason))
		} else {
			parts = append(parts, string(s.Source))
		}
	}
	return strings.Join(parts, " | ")
}

func weightFor(source model.SignalSource, w Weights) float64 {
	switch source {
	case model.SourceModelFinal:
		return w.ModelFinal
	case model.SourceModelBrand:
		return w.ModelBrand
	case model.SourceModelVisual:
		return w.ModelVisual
	case model.SourceBrandTier:
		return w.BrandTier
	case model.SourceLexical:
		return w.Lexical
	case model.SourceContextual:
		return w.Contextual
	default:
		return 0
	}
}
