package model

import "time"

// Classification is the final decision for one product. It is created once
// per classification run and never mutated; re-classifying a product produces
// a new Classification.
type Classification struct {
	ClassifiedAt time.Time      `json:"classifiedAt"`
	ProductID    string         `json:"productId"`
	Category     Category       `json:"category"`
	Confidence   int            `json:"confidence"` // 0-100, rounded and clamped
	Reason       string         `json:"reason"`
	Signals      []SignalResult `json:"signals,omitempty"`
	FastPath     bool           `json:"fastPath,omitempty"`
}

// BatchResult pairs a product with its classification inside batch output.
// The slice returned by a batch run preserves input ordering.
type BatchResult struct {
	ProductID string         `json:"productId"`
	Result    Classification `json:"result"`
}
