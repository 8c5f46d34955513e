package signal

import (
	"github.com/closetarchive/archivist/internal/brandbook"
	"github.com/closetarchive/archivist/internal/model"
)

// brandConfidence is the fixed confidence of a brand-tier vote. Brand
// recognition is precise but a brand alone never proves the garment belongs
// in the archive, so the vote stays below the model signals.
const brandConfidence = 75

var tierCategories = map[brandbook.Tier]model.Category{
	brandbook.TierMilitary: model.CategoryMilitary,
	brandbook.TierWorkwear: model.CategoryWorkwear,
	brandbook.TierJapan:    model.CategoryJapanese,
	brandbook.TierHeritage: model.CategoryHeritage,
	brandbook.TierBritish:  model.CategoryBritish,
}

// BrandScorer votes by recognizing a known brand in the title and mapping
// its tier to a category.
type BrandScorer struct {
	book *brandbook.Book
}

// NewBrandScorer returns a scorer over the given brand book.
func NewBrandScorer(book *brandbook.Book) *BrandScorer {
	return &BrandScorer{book: book}
}

// Score scans the title for a known brand. Brands in the OTHER tier are
// recognized but carry no category, so they produce a no-vote result just
// like an unknown brand; the canonical name is still reported so the model
// prompt can mention it.
func (s *BrandScorer) Score(title string) model.SignalResult {
	result := model.SignalResult{
		Source:   model.SourceBrandTier,
		Category: model.CategoryNone,
	}

	info, ok := s.book.Match(title)
	if !ok {
		return result
	}

	result.Brand = info.Canonical

	category, ok := tierCategories[info.Tier]
	if !ok {
		return result
	}

	result.Category = category
	result.Confidence = brandConfidence
	result.Reason = "brand tier: " + info.Canonical
	return result
}
