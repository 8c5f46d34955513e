// Package model defines the core domain models used throughout the application.
package model

import "strings"

// Category is one of the fixed archive buckets a product can be filed under.
type Category string

// Archive category constants.
const (
	CategoryMilitary Category = "MILITARY_ARCHIVE"
	CategoryWorkwear Category = "WORKWEAR_ARCHIVE"
	CategoryOutdoor  Category = "OUTDOOR_ARCHIVE"
	CategoryJapanese Category = "JAPANESE_ARCHIVE"
	CategoryHeritage Category = "HERITAGE_EUROPE"
	CategoryBritish  Category = "BRITISH_ARCHIVE"
	CategoryUnisex   Category = "UNISEX_ARCHIVE"

	// CategoryNone means a signal had nothing to say. It is never a decision.
	CategoryNone Category = "NONE"

	// CategoryArchive is the generic archival fallback used when no specific
	// category clears the acceptance threshold. Signals never emit it.
	CategoryArchive Category = "ARCHIVE"
)

// Categories returns the fixed set of concrete archive categories, in the
// order the fusion scorer iterates over them.
func Categories() []Category {
	return []Category{
		CategoryMilitary,
		CategoryWorkwear,
		CategoryOutdoor,
		CategoryJapanese,
		CategoryHeritage,
		CategoryBritish,
		CategoryUnisex,
	}
}

// IsConcrete reports whether c is one of the seven real archive categories
// (not NONE and not the generic fallback).
func (c Category) IsConcrete() bool {
	switch c {
	case CategoryMilitary, CategoryWorkwear, CategoryOutdoor, CategoryJapanese,
		CategoryHeritage, CategoryBritish, CategoryUnisex:
		return true
	default:
		return false
	}
}

// categoryAliases maps every label variant the signal sources are known to
// emit onto a canonical category. Keys are normalized (uppercase, single
// spaces) before lookup.
var categoryAliases = map[string]Category{
	"MILITARY ARCHIVE": CategoryMilitary,
	"MILITARY":         CategoryMilitary,
	"WORKWEAR ARCHIVE": CategoryWorkwear,
	"WORKWEAR":         CategoryWorkwear,
	"OUTDOOR ARCHIVE":  CategoryOutdoor,
	"OUTDOOR":          CategoryOutdoor,
	"JAPANESE ARCHIVE": CategoryJapanese,
	"JAPAN ARCHIVE":    CategoryJapanese,
	"JAPANESE":         CategoryJapanese,
	"JAPAN":            CategoryJapanese,
	"HERITAGE EUROPE":  CategoryHeritage,
	"HERITAGE ARCHIVE": CategoryHeritage,
	"HERITAGE":         CategoryHeritage,
	"EUROPE":           CategoryHeritage,
	"BRITISH ARCHIVE":  CategoryBritish,
	"BRITISH":          CategoryBritish,
	"UNISEX ARCHIVE":   CategoryUnisex,
	"UNISEX":           CategoryUnisex,
	"ARCHIVE":          CategoryArchive,
	"NONE":             CategoryNone,
	"UNCATEGORIZED":    CategoryNone,
}

// NormalizeCategory maps a free-text category label from any signal source
// (model output, rule tables, stored rows) onto exactly one Category value.
// Unknown labels normalize to NONE, never to a new category. The function is
// idempotent over its own outputs.
func NormalizeCategory(label string) Category {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.Join(strings.Fields(normalized), " ")

	if cat, ok := categoryAliases[normalized]; ok {
		return cat
	}
	return CategoryNone
}
