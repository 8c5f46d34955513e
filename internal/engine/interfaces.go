// Package engine implements the classification engine that fuses every
// evidence source into one archive category per product.
package engine

import (
	"context"

	"github.com/closetarchive/archivist/internal/fastpath"
	"github.com/closetarchive/archivist/internal/llm"
	"github.com/closetarchive/archivist/internal/model"
)

// LexicalScorer votes on a title by keyword evidence.
type LexicalScorer interface {
	Score(title string) model.SignalResult
}

// ContextAnalyzer votes on a title by pattern evidence.
type ContextAnalyzer interface {
	Analyze(title string) model.SignalResult
}

// BrandScorer votes on a title by brand-tier evidence.
type BrandScorer interface {
	Score(title string) model.SignalResult
}

// FastPathClassifier runs the local high-precision rules that can settle a
// product without any model call.
type FastPathClassifier interface {
	Classify(title string) fastpath.Result
}

// ModelClient judges a product with a language model.
type ModelClient interface {
	Judge(ctx context.Context, req llm.Request) (llm.Judgment, error)
}

// ImageFetcher downloads a product photo.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, mime string, err error)
}
