// Package brandbook holds the static brand-tier database and its lookup
// index. The classifier consumes it read-only; the table is never mutated
// after initialization, so concurrent lookups need no locking.
package brandbook

import (
	"sort"
	"strings"
)

// Tier is the pre-assigned stylistic lineage of a brand.
type Tier string

// Brand tier constants.
const (
	TierMilitary Tier = "MILITARY"
	TierWorkwear Tier = "WORKWEAR"
	TierJapan    Tier = "JAPAN"
	TierHeritage Tier = "HERITAGE"
	TierBritish  Tier = "BRITISH"
	TierOther    Tier = "OTHER"
)

// BrandInfo describes one known brand.
type BrandInfo struct {
	Canonical string
	Aliases   []string
	Tier      Tier
	Origin    string
}

// Book is the compiled lookup index over the brand table.
type Book struct {
	lookup map[string]BrandInfo
	// keys sorted longest-first so "POLO RALPH LAUREN" wins over "POLO".
	sortedKeys []string
}

// minScanKeyLen guards the title scan against two-letter aliases ("UA",
// "CK") matching inside unrelated words.
const minScanKeyLen = 3

// New builds the index over the built-in brand table.
func New() *Book {
	return newFromTable(brandTable)
}

func newFromTable(table map[string]BrandInfo) *Book {
	b := &Book{lookup: make(map[string]BrandInfo)}

	for key, info := range table {
		b.add(strings.ToUpper(key), info)
		for _, alias := range info.Aliases {
			b.add(strings.ToUpper(alias), info)
		}
	}

	sort.Slice(b.sortedKeys, func(i, j int) bool {
		if len(b.sortedKeys[i]) != len(b.sortedKeys[j]) {
			return len(b.sortedKeys[i]) > len(b.sortedKeys[j])
		}
		return b.sortedKeys[i] < b.sortedKeys[j]
	})

	return b
}

func (b *Book) add(key string, info BrandInfo) {
	if _, exists := b.lookup[key]; exists {
		return
	}
	b.lookup[key] = info
	b.sortedKeys = append(b.sortedKeys, key)
}

// Lookup resolves an exact brand name or alias.
func (b *Book) Lookup(name string) (BrandInfo, bool) {
	info, ok := b.lookup[strings.ToUpper(strings.TrimSpace(name))]
	return info, ok
}

// Match scans a product title for any known brand name or alias, preferring
// longer keys. Returns false when no brand is recognized.
func (b *Book) Match(title string) (BrandInfo, bool) {
	haystack := strings.ToUpper(title)

	for _, key := range b.sortedKeys {
		if len(key) < minScanKeyLen {
			continue
		}
		if strings.Contains(haystack, key) {
			return b.lookup[key], true
		}
	}

	return BrandInfo{}, false
}

// Size returns the number of indexed keys, aliases included.
func (b *Book) Size() int {
	return len(b.sortedKeys)
}
