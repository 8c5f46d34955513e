package llm

import (
	"fmt"
	"strings"

	"github.com/closetarchive/archivist/internal/model"
)

// buildJudgmentPrompt renders the single combined prompt covering the brand
// read, the visual read, and the final call. One request per product keeps
// quota usage predictable.
func buildJudgmentPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("You are an expert curator of secondhand archive fashion. ")
	b.WriteString("Analyze the product below and respond ONLY with a single JSON object, no markdown, no commentary.\n\n")

	fmt.Fprintf(&b, "Product title: %s\n", req.Title)
	if req.Brand != "" {
		fmt.Fprintf(&b, "Recognized brand: %s\n", req.Brand)
	}
	if req.HasImage() {
		b.WriteString("A product photo is attached.\n")
	}

	b.WriteString("\nValid categories (use these exact labels):\n")
	for _, c := range model.Categories() {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("- NONE (does not fit any category)\n")

	b.WriteString(`
Respond with this JSON shape:
{
  "brandAnalysis": {"brand": "...", "country": "...", "category": "...", "confidence": 0-100, "reason": "..."},
`)
	if req.HasImage() {
		b.WriteString(`  "visualAnalysis": {"clothingType": "...", "fabric": "...", "pattern": "...", "category": "...", "confidence": 0-100, "reason": "..."},
`)
	}
	b.WriteString(`  "finalJudgment": {"category": "...", "confidence": 0-100, "reason": "..."}
}

brandAnalysis judges from the brand's lineage alone. `)
	if req.HasImage() {
		b.WriteString("visualAnalysis judges from the photo alone. ")
	}
	b.WriteString("finalJudgment weighs everything together. Confidence reflects how certain you are, not how desirable the item is.")

	return b.String()
}
