package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/closetarchive/archivist/internal/common"
	"github.com/closetarchive/archivist/internal/model"
)

// jsonBlockRegex pulls the outermost brace-delimited block out of a response
// that mixes prose with JSON.
var jsonBlockRegex = regexp.MustCompile(`\{[\s\S]*\}`)

// rawJudgment mirrors the JSON shape the prompt asks for.
type rawJudgment struct {
	BrandAnalysis *struct {
		Brand   string `json:"brand"`
		Country string `json:"country"`
		rawVote
	} `json:"brandAnalysis"`
	VisualAnalysis *struct {
		ClothingType string `json:"clothingType"`
		Fabric       string `json:"fabric"`
		Pattern      string `json:"pattern"`
		rawVote
	} `json:"visualAnalysis"`
	FinalJudgment *rawVote `json:"finalJudgment"`
}

type rawVote struct {
	Category   string  `json:"category"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// ParseJudgment extracts a Judgment from raw model output. Models wrap JSON
// in markdown fences or prose often enough that we try three strategies in
// order: decode directly, strip code fences, then pull the first brace
// block. Failure of all three returns ErrNoModelResult.
func ParseJudgment(content string) (Judgment, error) {
	candidates := []string{
		strings.TrimSpace(content),
		stripCodeFences(content),
	}
	if block := jsonBlockRegex.FindString(content); block != "" {
		candidates = append(candidates, block)
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		var raw rawJudgment
		if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
			continue
		}
		if raw.FinalJudgment == nil {
			continue
		}
		return raw.toJudgment(), nil
	}

	return Judgment{}, fmt.Errorf("%w: unparseable model output", common.ErrNoModelResult)
}

func (r rawJudgment) toJudgment() Judgment {
	j := Judgment{Final: r.FinalJudgment.toVote()}
	if r.BrandAnalysis != nil {
		j.Brand = BrandAnalysis{
			Brand:   strings.TrimSpace(r.BrandAnalysis.Brand),
			Country: strings.TrimSpace(r.BrandAnalysis.Country),
			Vote:    r.BrandAnalysis.rawVote.toVote(),
		}
	}
	if r.VisualAnalysis != nil {
		j.Visual = VisualAnalysis{
			ClothingType: strings.TrimSpace(r.VisualAnalysis.ClothingType),
			Fabric:       strings.TrimSpace(r.VisualAnalysis.Fabric),
			Pattern:      strings.TrimSpace(r.VisualAnalysis.Pattern),
			Vote:         r.VisualAnalysis.rawVote.toVote(),
		}
	}
	return j
}

func (r rawVote) toVote() Vote {
	confidence := int(r.Confidence)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	return Vote{
		Category:   model.NormalizeCategory(r.Category),
		Confidence: confidence,
		Reason:     strings.TrimSpace(r.Reason),
	}
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
