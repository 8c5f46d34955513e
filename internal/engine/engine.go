package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/closetarchive/archivist/internal/common"
	"github.com/closetarchive/archivist/internal/llm"
	"github.com/closetarchive/archivist/internal/model"
)

// Engine fuses lexical, contextual, brand, and model evidence into one
// archive category per product.
type Engine struct {
	lexical    LexicalScorer
	contextual ContextAnalyzer
	brand      BrandScorer
	fastPath   FastPathClassifier
	modelJudge ModelClient
	images     ImageFetcher
	config     Config
}

// New creates an engine from its evidence sources. Configuration problems
// surface here, not at classification time.
func New(
	lexical LexicalScorer,
	contextual ContextAnalyzer,
	brand BrandScorer,
	fastPath FastPathClassifier,
	modelJudge ModelClient,
	images ImageFetcher,
	config Config,
) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	return &Engine{
		lexical:    lexical,
		contextual: contextual,
		brand:      brand,
		fastPath:   fastPath,
		modelJudge: modelJudge,
		images:     images,
		config:     config,
	}, nil
}

// ClassifyProduct runs the full pipeline for one product: fast-path guard,
// local signals, model judgment, fusion. Signal failures are absences, not
// errors; only an empty title fails.
func (e *Engine) ClassifyProduct(ctx context.Context, product model.Product) (model.Classification, error) {
	if strings.TrimSpace(product.Name) == "" {
		return model.Classification{}, fmt.Errorf("product %s: %w", product.ID, common.ErrEmptyTitle)
	}

	if fp := e.fastPath.Classify(product.Name); fp.Confidence >= e.config.FastPathThreshold {
		slog.Debug("Fast-path hit, skipping model",
			"product", product.ID,
			"category", fp.Category,
			"confidence", fp.Confidence)

		return model.Classification{
			ProductID:    product.ID,
			Category:     fp.Category,
			Confidence:   fp.Confidence,
			Reason:       fp.Reason,
			FastPath:     true,
			ClassifiedAt: time.Now(),
			Signals: []model.SignalResult{{
				Source:     model.SourceFastPath,
				Category:   fp.Category,
				Confidence: fp.Confidence,
				Reason:     fp.Reason,
			}},
		}, nil
	}

	signals := make([]model.SignalResult, 0, 6)

	lexical := e.lexical.Score(product.Name)
	signals = append(signals, lexical)

	contextual := e.contextual.Analyze(product.Name)
	signals = append(signals, contextual)

	brand := e.brand.Score(product.Name)
	signals = append(signals, brand)

	signals = append(signals, e.modelSignals(ctx, product, brand.Brand)...)

	fused := fuse(signals, e.config)

	return model.Classification{
		ProductID:    product.ID,
		Category:     fused.Category,
		Confidence:   fused.Confidence,
		Reason:       fused.Reason,
		Signals:      signals,
		ClassifiedAt: time.Now(),
	}, nil
}

// modelSignals asks the model for its judgment and converts it into signal
// votes. A dead model is a missing signal: the fusion simply runs on local
// evidence.
func (e *Engine) modelSignals(ctx context.Context, product model.Product, brandName string) []model.SignalResult {
	req := llm.Request{
		Title: product.Name,
		Brand: brandName,
	}

	if product.ImageURL != "" {
		data, mime, err := e.images.Fetch(ctx, product.ImageURL)
		if err != nil {
			slog.Warn("Image fetch failed, degrading to text-only",
				"product", product.ID,
				"url", product.ImageURL,
				"error", err)
		} else {
			req.ImageData = data
			req.ImageMIME = mime
		}
	}

	var judgment llm.Judgment
	err := common.WithRetry(ctx, func() error {
		j, judgeErr := e.modelJudge.Judge(ctx, req)
		if judgeErr != nil {
			if common.IsRetryable(judgeErr) {
				return judgeErr
			}
			return &common.RetryableError{Err: judgeErr, Retryable: false}
		}
		judgment = j
		return nil
	}, common.RetryOptions{
		MaxAttempts:  2,
		InitialDelay: 500 * time.Millisecond,
	})
	if err != nil {
		slog.Warn("Model judgment unavailable, fusing local signals only",
			"product", product.ID,
			"error", err)
		return nil
	}

	signals := make([]model.SignalResult, 0, 3)

	if judgment.Brand.Category.IsConcrete() {
		signals = append(signals, model.SignalResult{
			Source:     model.SourceModelBrand,
			Category:   judgment.Brand.Category,
			Confidence: judgment.Brand.Confidence,
			Reason:     judgment.Brand.Reason,
			Brand:      judgment.Brand.Brand,
		})
	}

	if req.HasImage() && judgment.Visual.Category.IsConcrete() {
		signals = append(signals, model.SignalResult{
			Source:     model.SourceModelVisual,
			Category:   judgment.Visual.Category,
			Confidence: judgment.Visual.Confidence,
			Reason:     judgment.Visual.Reason,
		})
	}

	if judgment.Final.Category.IsConcrete() {
		signals = append(signals, model.SignalResult{
			Source:     model.SourceModelFinal,
			Category:   judgment.Final.Category,
			Confidence: judgment.Final.Confidence,
			Reason:     judgment.Final.Reason,
		})
	}

	return signals
}
