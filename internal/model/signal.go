package model

// SignalSource identifies which evidence source produced a vote.
type SignalSource string

// Signal source constants.
const (
	SourceLexical     SignalSource = "lexical"
	SourceContextual  SignalSource = "contextual"
	SourceBrandTier   SignalSource = "brand_tier"
	SourceModelBrand  SignalSource = "model_brand"
	SourceModelVisual SignalSource = "model_visual"
	SourceModelFinal  SignalSource = "model_final"
	SourceFastPath    SignalSource = "fast_path"
)

// SignalResult is one source's category vote. Every source produces zero or
// one of these per product; absence of a signal is legitimate and is simply
// left out of fusion, not recorded as a zero vote.
type SignalResult struct {
	Source     SignalSource `json:"source"`
	Category   Category     `json:"category"`
	Confidence int          `json:"confidence"` // 0-100
	Reason     string       `json:"reason,omitempty"`

	// MatchedKeywords lists the lexical hits behind the vote, when any.
	MatchedKeywords []string `json:"matchedKeywords,omitempty"`
	// Brand is the canonical brand name behind a brand-tier vote, when any.
	Brand string `json:"brand,omitempty"`
}

// HasVote reports whether the signal names a concrete category.
func (s SignalResult) HasVote() bool {
	return s.Category.IsConcrete()
}
