package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/closetarchive/archivist/internal/model"
)

// BatchPhase labels one step of a product's journey through the batch.
type BatchPhase string

// Batch progress phases.
const (
	PhaseAnalyzing BatchPhase = "analyzing"
	PhaseDone      BatchPhase = "done"
	PhaseFailed    BatchPhase = "failed"
)

// ProgressFunc receives per-product progress while a batch runs. Index is
// zero-based over the input slice.
type ProgressFunc func(index, total int, title string, phase BatchPhase)

// ClassifyBatch classifies every product, a group at a time. The result
// slice always has len(products) entries in input order; a product whose
// classification fails gets a degenerate archive result instead of aborting
// the batch. Cancellation stops new groups from launching while in-flight
// members finish.
func (e *Engine) ClassifyBatch(ctx context.Context, products []model.Product, onProgress ProgressFunc) []model.BatchResult {
	results := make([]model.BatchResult, len(products))
	if len(products) == 0 {
		return results
	}

	if onProgress == nil {
		onProgress = func(int, int, string, BatchPhase) {}
	}

	groupSize := e.config.Concurrency
	delay := time.Duration(e.config.GroupDelayMillis) * time.Millisecond
	total := len(products)

	slog.Info("Starting batch classification",
		"products", total,
		"concurrency", groupSize)

	for start := 0; start < total; start += groupSize {
		if start > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
		}

		if ctx.Err() != nil {
			e.fillCanceled(results, products, start)
			slog.Warn("Batch canceled", "completed", start, "total", total)
			return results
		}

		end := start + groupSize
		if end > total {
			end = total
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = e.classifyOne(ctx, products[idx], idx, total, onProgress)
			}(i)
		}
		wg.Wait()
	}

	return results
}

// classifyOne wraps ClassifyProduct with panic recovery so one bad product
// cannot take the batch down.
func (e *Engine) classifyOne(ctx context.Context, product model.Product, idx, total int, onProgress ProgressFunc) (result model.BatchResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic classifying product",
				"product", product.ID,
				"panic", r)
			result = degenerateResult(product, fmt.Sprintf("panic: %v", r))
			onProgress(idx, total, product.ShortName(40), PhaseFailed)
		}
	}()

	onProgress(idx, total, product.ShortName(40), PhaseAnalyzing)

	classification, err := e.ClassifyProduct(ctx, product)
	if err != nil {
		slog.Error("Product classification failed",
			"product", product.ID,
			"error", err)
		onProgress(idx, total, product.ShortName(40), PhaseFailed)
		return degenerateResult(product, err.Error())
	}

	onProgress(idx, total, product.ShortName(40), PhaseDone)
	return model.BatchResult{ProductID: product.ID, Result: classification}
}

func (e *Engine) fillCanceled(results []model.BatchResult, products []model.Product, from int) {
	for i := from; i < len(products); i++ {
		results[i] = degenerateResult(products[i], "batch canceled")
	}
}

// degenerateResult is the stand-in for a product the pipeline could not
// judge: the general archive with zero confidence.
func degenerateResult(product model.Product, reason string) model.BatchResult {
	return model.BatchResult{
		ProductID: product.ID,
		Result: model.Classification{
			ProductID:    product.ID,
			Category:     model.CategoryArchive,
			Confidence:   0,
			Reason:       reason,
			ClassifiedAt: time.Now(),
		},
	}
}
