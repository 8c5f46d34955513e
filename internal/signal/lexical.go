// Package signal provides the cheap, local evidence sources that vote on a
// product's archive category: lexical keyword scoring, contextual pattern
// detection, and brand-tier lookup. Each source returns at most one vote;
// fusion happens elsewhere.
package signal

import (
	"strings"

	"github.com/closetarchive/archivist/internal/model"
)

const (
	lexicalPointsPerKeyword = 20
	lexicalMaxConfidence    = 60
)

// LexicalScorer scores titles by counting category keyword hits.
type LexicalScorer struct {
	keywords map[model.Category][]string
}

// NewLexicalScorer returns a scorer over the built-in keyword lists.
//
// Only five of the seven categories carry keyword lists: outdoor and unisex
// garments have no vocabulary distinctive enough to score on title text
// alone, so those categories are reachable only through the brand and model
// signals.
func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{keywords: categoryKeywords}
}

// Score counts keyword hits per category and votes for the highest-scoring
// one. Each hit is worth 20 points, capped at 60. A title with no hits
// produces a no-vote result (NONE, confidence 0).
func (s *LexicalScorer) Score(title string) model.SignalResult {
	text := strings.ToUpper(title)

	best := model.SignalResult{
		Source:   model.SourceLexical,
		Category: model.CategoryNone,
	}

	for _, category := range model.Categories() {
		var matched []string
		for _, kw := range s.keywords[category] {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		confidence := len(matched) * lexicalPointsPerKeyword
		if confidence > lexicalMaxConfidence {
			confidence = lexicalMaxConfidence
		}

		if confidence > best.Confidence {
			best.Category = category
			best.Confidence = confidence
			best.MatchedKeywords = matched
			best.Reason = "keyword match: " + strings.Join(matched, ", ")
		}
	}

	return best
}

var categoryKeywords = map[model.Category][]string{
	model.CategoryMilitary: {
		"MILITARY", "밀리터리", "군용", "군복", "군납",
		"FIELD", "필드", "CARGO", "카고",
		"CAMO", "카모", "CAMOUFLAGE", "위장",
		"COMBAT", "컴뱃", "FATIGUE",
		"ARMY", "아미", "NAVY", "AIR FORCE",
		"FLIGHT", "플라이트", "BOMBER", "봄버",
	},
	model.CategoryWorkwear: {
		"WORKWEAR", "워크웨어", "작업복",
		"CHORE", "초어", "COVERALL", "커버올",
		"PAINTER", "페인터", "CARPENTER", "카펜터",
		"DUNGAREE", "던가리", "OVERALL", "오버올",
		"DENIM", "데님", "DUCK", "덕",
		"HICKORY", "히코리",
	},
	model.CategoryJapanese: {
		"JAPAN", "재팬", "일본", "JAPANESE",
		"아메카지", "AMEKAJI",
		"BORO", "보로", "SASHIKO", "사시코",
		"SELVEDGE", "셀비지", "셀비치",
		"INDIGO", "인디고", "KIMONO", "기모노",
		"NORAGI", "노라기",
	},
	model.CategoryHeritage: {
		"HERITAGE", "헤리티지", "VINTAGE", "빈티지",
		"CLASSIC", "클래식", "RETRO", "레트로",
		"IVY", "아이비", "PREPPY", "프레피",
		"OXFORD", "옥스포드", "RUGBY", "럭비",
		"OLD LOGO", "올드로고", "90S", "90년대", "80S", "80년대",
	},
	model.CategoryBritish: {
		"BRITISH", "브리티시", "ENGLAND", "잉글랜드", "영국",
		"LONDON", "런던",
		"TWEED", "트위드", "TARTAN", "타탄", "CHECK", "체크",
		"DUFFLE", "더플", "TRENCH", "트렌치",
		"WAXED", "왁스드", "QUILTED", "퀼팅",
	},
}
