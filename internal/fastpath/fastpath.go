// Package fastpath implements the local rule-based classifier used to
// short-circuit the full analysis pipeline. It is a pure function of the
// title: brand hits score high, keyword hits accumulate, and a confident
// result lets the caller skip every expensive signal source.
package fastpath

import (
	"strings"

	"github.com/closetarchive/archivist/internal/model"
)

// Result is the fast-path verdict for one title.
type Result struct {
	Category   model.Category
	Confidence int // 0-100
	Reason     string
}

type ruleSet struct {
	category model.Category
	label    string
	keywords []string
	brands   []string
}

const (
	brandScore   = 50
	keywordScore = 10
	minScore     = 10
)

// Classifier matches titles against the built-in rule sets.
type Classifier struct {
	rules []ruleSet
}

// New returns a classifier over the built-in rules.
func New() *Classifier {
	return &Classifier{rules: defaultRules}
}

// Classify scores the title against every rule set and returns the best
// match. Scores below the minimum return NONE with zero confidence.
func (c *Classifier) Classify(title string) Result {
	text := strings.ToUpper(title)

	best := Result{Category: model.CategoryNone}
	for _, rs := range c.rules {
		score := 0
		var reasons []string

		for _, b := range rs.brands {
			if strings.Contains(text, b) {
				score += brandScore
				reasons = append(reasons, rs.label+" brand")
				break
			}
		}
		for _, kw := range rs.keywords {
			if strings.Contains(text, kw) {
				score += keywordScore
				if len(reasons) == 0 || reasons[len(reasons)-1] != rs.label+" keywords" {
					reasons = append(reasons, rs.label+" keywords")
				}
			}
		}

		if score > best.Confidence {
			best = Result{
				Category:   rs.category,
				Confidence: minInt(100, score),
				Reason:     strings.Join(reasons, ", "),
			}
		}
	}

	if best.Confidence < minScore {
		return Result{Category: model.CategoryNone}
	}
	return best
}

var defaultRules = []ruleSet{
	{
		category: model.CategoryMilitary,
		label:    "military",
		keywords: []string{
			"M-65", "M65", "BDU", "MA-1", "MA1", "N-3B", "N3B", "CWU",
			"FIELD JACKET", "필드자켓", "필드 자켓",
			"MILITARY", "밀리터리", "군복", "군용", "군납",
			"CARGO", "카고", "CAMO", "카모", "CAMOUFLAGE",
			"FATIGUE", "COMBAT", "컴뱃",
			"ARMY", "NAVY", "AIR FORCE", "USMC", "USAF",
		},
		brands: []string{"ALPHA", "ROTHCO", "PROPPER", "TRU-SPEC", "BUZZ RICKSON"},
	},
	{
		category: model.CategoryWorkwear,
		label:    "workwear",
		keywords: []string{
			"CHORE", "초어", "COVERALL", "커버올",
			"PAINTER", "페인터", "DUNGAREE", "던가리",
			"WORKWEAR", "작업복", "워크",
			"DOUBLE KNEE", "더블니", "HICKORY", "히코리",
		},
		brands: []string{"CARHARTT", "칼하트", "DICKIES", "딕키즈", "RED KAP", "REDKAP", "BEN DAVIS", "BENDAVIS", "POINTER"},
	},
	{
		category: model.CategoryJapanese,
		label:    "japanese",
		keywords: []string{
			"BORO", "보로", "SASHIKO", "사시코",
			"INDIGO", "인디고", "SELVEDGE", "셀비지", "아메카지",
		},
		brands: []string{
			"BEAMS", "빔스", "UNITED ARROWS", "COMME DES GARCONS", "꼼데가르송",
			"KAPITAL", "캐피탈", "VISVIM", "비스빔", "NEIGHBORHOOD", "네이버후드",
			"WTAPS", "NANAMICA", "나나미카", "ENGINEERED GARMENTS",
			"UNIQLO", "유니클로", "MUJI", "무인양품",
		},
	},
	{
		category: model.CategoryHeritage,
		label:    "heritage",
		keywords: []string{
			"HERITAGE", "헤리티지", "VINTAGE", "빈티지",
			"CLASSIC", "클래식", "IVY", "아이비", "PREPPY", "프레피",
			"OXFORD", "옥스포드", "OLD LOGO", "올드로고",
		},
		brands: []string{
			"RALPH LAUREN", "랄프로렌", "POLO", "폴로",
			"BROOKS BROTHERS", "브룩스브라더스", "GANT", "간트",
			"LACOSTE", "라코스테", "LL BEAN", "LLBEAN", "EDDIE BAUER", "에디바우어",
			"PENDLETON", "펜들턴", "WOOLRICH", "울리치",
		},
	},
	{
		category: model.CategoryBritish,
		label:    "british",
		keywords: []string{
			"BRITISH", "브리티시", "ENGLAND", "잉글랜드",
			"LONDON", "런던", "SCOTTISH", "스코티시",
			"TARTAN", "타탄", "TWEED", "트위드", "DUFFLE", "더플",
		},
		brands: []string{
			"BARBOUR", "바버", "BURBERRY", "버버리", "AQUASCUTUM", "아쿠아스큐텀",
			"GLOVERALL", "글로버올", "MACKINTOSH", "맥킨토시",
			"FRED PERRY", "프레드페리", "BARACUTA", "바라쿠타",
			"DR. MARTENS", "닥터마틴", "CLARKS", "클락스",
		},
	},
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
