// Package llm provides model-backed product judgment: prompt construction,
// the Gemini HTTP client, response parsing, and the fallback chain that
// degrades gracefully across models.
package llm

import (
	"context"

	"github.com/closetarchive/archivist/internal/model"
)

// Request carries everything a model needs to judge one product. ImageData
// is optional; when empty the judgment runs in text-only mode and the
// visual vote is absent.
type Request struct {
	Title     string
	Brand     string // canonical brand name when already recognized, else empty
	ImageMIME string
	ImageData []byte
}

// HasImage reports whether the request carries image bytes.
func (r Request) HasImage() bool {
	return len(r.ImageData) > 0
}

// Vote is one category opinion inside a judgment.
type Vote struct {
	Category   model.Category
	Reason     string
	Confidence int // 0-100
}

// BrandAnalysis is the model's read of the product purely from its brand.
type BrandAnalysis struct {
	Brand   string
	Country string
	Vote
}

// VisualAnalysis is the model's read of the product purely from its photo.
type VisualAnalysis struct {
	ClothingType string
	Fabric       string
	Pattern      string
	Vote
}

// Judgment is the model's full answer for one product: an independent brand
// read, an optional visual read, and the final overall call.
type Judgment struct {
	ModelID string
	Brand   BrandAnalysis
	Visual  VisualAnalysis // zero value when the request had no image
	Final   Vote
}

// Client judges products using a language model.
type Client interface {
	// Judge analyzes one product and returns the model's votes.
	Judge(ctx context.Context, req Request) (Judgment, error)
	// ModelID identifies the underlying model, for logging and breaker names.
	ModelID() string
}
