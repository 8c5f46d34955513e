package model

// Product is a single secondhand listing submitted for classification.
// It is immutable once handed to the classifier.
type Product struct {
	// ID identifies the product in the caller's system.
	ID string `json:"id"`
	// Name is the display title. Required, non-empty.
	Name string `json:"name"`
	// ImageURL optionally points at the representative photo.
	ImageURL string `json:"imageUrl,omitempty"`
}

// ShortName returns the title truncated for progress output.
func (p Product) ShortName(n int) string {
	runes := []rune(p.Name)
	if len(runes) <= n {
		return p.Name
	}
	return string(runes[:n])
}
