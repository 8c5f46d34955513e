package signal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/closetarchive/archivist/internal/model"
)

// ContextRule is a regex rule that recognizes category-specific garment
// nomenclature a keyword list would miss, such as military spec numbers or
// fabric constructions.
type ContextRule struct {
	Name       string
	Category   model.Category
	Regex      string
	Priority   int // higher priority rules are checked first
	Confidence int // fixed confidence when the rule matches (0-100)
}

type compiledContextRule struct {
	compiledRegex *regexp.Regexp
	ContextRule
}

// ContextAnalyzer classifies titles against an ordered set of context rules.
// First match wins; every rule carries a fixed confidence.
type ContextAnalyzer struct {
	rules []compiledContextRule
}

// NewContextAnalyzer compiles the given rules, case-insensitive by default,
// ordered by descending priority.
func NewContextAnalyzer(rules []ContextRule) (*ContextAnalyzer, error) {
	compiled := make([]compiledContextRule, 0, len(rules))

	for _, r := range rules {
		regexStr := r.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile context rule %s: %w", r.Name, err)
		}

		compiled = append(compiled, compiledContextRule{
			ContextRule:   r,
			compiledRegex: regex,
		})
	}

	// Sort by priority (highest first)
	for i := 0; i < len(compiled)-1; i++ {
		for j := i + 1; j < len(compiled); j++ {
			if compiled[j].Priority > compiled[i].Priority {
				compiled[i], compiled[j] = compiled[j], compiled[i]
			}
		}
	}

	return &ContextAnalyzer{rules: compiled}, nil
}

// NewDefaultContextAnalyzer builds an analyzer over the built-in rules.
// The built-in rules always compile.
func NewDefaultContextAnalyzer() *ContextAnalyzer {
	a, err := NewContextAnalyzer(defaultContextRules)
	if err != nil {
		panic(err)
	}
	return a
}

// Analyze checks the title against each rule in priority order and returns
// the first match as a vote. No match produces a no-vote result.
func (a *ContextAnalyzer) Analyze(title string) model.SignalResult {
	for _, rule := range a.rules {
		if rule.compiledRegex.MatchString(title) {
			return model.SignalResult{
				Source:     model.SourceContextual,
				Category:   rule.Category,
				Confidence: rule.Confidence,
				Reason:     "pattern: " + rule.Name,
			}
		}
	}

	return model.SignalResult{
		Source:   model.SourceContextual,
		Category: model.CategoryNone,
	}
}

// RuleCount returns the number of compiled rules.
func (a *ContextAnalyzer) RuleCount() int {
	return len(a.rules)
}

// Military spec numbers outrank everything else: a title carrying "M-65" is
// military regardless of what fabric words surround it.
var defaultContextRules = []ContextRule{
	{
		Name:       "military spec number",
		Category:   model.CategoryMilitary,
		Regex:      `\b(m-?65|m-?51|ma-?1|n-?3b|n-?2b|l-?2b|b-?15|cwu-?(36|45)|bdu|ecwcs|ocp)\b`,
		Priority:   100,
		Confidence: 55,
	},
	{
		Name:       "military issue marking",
		Category:   model.CategoryMilitary,
		Regex:      `(mil-?spec|military issue|us army|u\.s\. army|us navy|usmc|usaf|nato|군납|관물)`,
		Priority:   90,
		Confidence: 55,
	},
	{
		Name:       "workwear construction",
		Category:   model.CategoryWorkwear,
		Regex:      `(duck canvas|덕 ?캔버스|triple stitch|삼봉|double knee|더블 ?니|hickory stripe|히코리 ?스트라이프)`,
		Priority:   80,
		Confidence: 50,
	},
	{
		Name:       "technical shell fabric",
		Category:   model.CategoryOutdoor,
		Regex:      `(gore-?tex|고어텍스|polartec|폴라텍|e-?vent|pertex|퍼텍스|sympatex|windstopper)`,
		Priority:   80,
		Confidence: 50,
	},
	{
		Name:       "japanese textile craft",
		Category:   model.CategoryJapanese,
		Regex:      `(selvedge|셀비지|셀비치|sashiko|사시코|boro|보로|aizome|아이조메|kasuri|가스리)`,
		Priority:   70,
		Confidence: 50,
	},
	{
		Name:       "british fabric tradition",
		Category:   model.CategoryBritish,
		Regex:      `(waxed cotton|왁스드 ?코튼|harris tweed|해리스 ?트위드|tartan|타탄|ventile|벤타일|melton|멜튼)`,
		Priority:   70,
		Confidence: 50,
	},
}
