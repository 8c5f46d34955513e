package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closetarchive/archivist/internal/fastpath"
	"github.com/closetarchive/archivist/internal/llm"
	"github.com/closetarchive/archivist/internal/model"
)

func batchProducts(n int) []model.Product {
	products := make([]model.Product, n)
	for i := range products {
		products[i] = model.Product{
			ID:   string(rune('a' + i)),
			Name: "빈티지 아이템",
		}
	}
	return products
}

func TestClassifyBatchPreservesLengthAndOrder(t *testing.T) {
	client := llm.NewMockClient(llm.Judgment{
		Final: llm.Vote{Category: model.CategoryHeritage, Confidence: 80},
	})
	eng := newTestEngine(t, fastpath.Result{Category: model.CategoryNone}, client, &stubImages{})

	products := batchProducts(7)
	results := eng.ClassifyBatch(context.Background(), products, nil)

	require.Len(t, results, len(products))
	for i, r := range results {
		assert.Equal(t, products[i].ID, r.ProductID, "result %d out of order", i)
		assert.Equal(t, model.CategoryHeritage, r.Result.Category)
	}
	assert.Equal(t, len(products), client.CallCount())
}

func TestClassifyBatchEmptyInput(t *testing.T) {
	eng := newTestEngine(t, fastpath.Result{Category: model.CategoryNone}, llm.NewMockClient(llm.Judgment{}), &stubImages{})

	results := eng.ClassifyBatch(context.Background(), nil, nil)
	assert.Empty(t, results)
}

func TestClassifyBatchDegenerateResultOnFailure(t *testing.T) {
	client := llm.NewMockClient(llm.Judgment{
		Final: llm.Vote{Category: model.CategoryHeritage, Confidence: 80},
	})
	eng := newTestEngine(t, fastpath.Result{Category: model.CategoryNone}, client, &stubImages{})

	products := []model.Product{
		{ID: "good-1", Name: "빈티지 셔츠"},
		{ID: "bad", Name: "   "}, // empty title fails classification
		{ID: "good-2", Name: "빈티지 팬츠"},
	}

	results := eng.ClassifyBatch(context.Background(), products, nil)
	require.Len(t, results, 3)

	assert.Equal(t, model.CategoryHeritage, results[0].Result.Category)
	assert.Equal(t, model.CategoryHeritage, results[2].Result.Category)

	degenerate := results[1].Result
	assert.Equal(t, model.CategoryArchive, degenerate.Category)
	assert.Equal(t, 0, degenerate.Confidence)
	assert.NotEmpty(t, degenerate.Reason)
}

func TestClassifyBatchProgressCallback(t *testing.T) {
	client := llm.NewMockClient(llm.Judgment{
		Final: llm.Vote{Category: model.CategoryHeritage, Confidence: 80},
	})
	eng := newTestEngine(t, fastpath.Result{Category: model.CategoryNone}, client, &stubImages{})

	products := batchProducts(4)

	var mu sync.Mutex
	phases := make(map[BatchPhase]int)
	results := eng.ClassifyBatch(context.Background(), products, func(_, total int, _ string, phase BatchPhase) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, len(products), total)
		phases[phase]++
	})

	require.Len(t, results, 4)
	assert.Equal(t, 4, phases[PhaseAnalyzing])
	assert.Equal(t, 4, phases[PhaseDone])
	assert.Equal(t, 0, phases[PhaseFailed])
}

func TestClassifyBatchCancellation(t *testing.T) {
	client := llm.NewMockClient(llm.Judgment{
		Final: llm.Vote{Category: model.CategoryHeritage, Confidence: 80},
	})

	cfg := DefaultConfig()
	cfg.Concurrency = 2
	cfg.GroupDelayMillis = 10

	eng, err := New(
		stubLexical{result: noVote(model.SourceLexical)},
		stubContextual{result: noVote(model.SourceContextual)},
		stubBrand{result: noVote(model.SourceBrandTier)},
		stubFastPath{result: fastpath.Result{Category: model.CategoryNone}},
		client,
		&stubImages{},
		cfg,
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	products := batchProducts(10)
	var mu sync.Mutex
	done := 0
	results := eng.ClassifyBatch(ctx, products, func(_, _ int, _ string, phase BatchPhase) {
		mu.Lock()
		defer mu.Unlock()
		if phase == PhaseDone {
			done++
			if done == 2 {
				cancel()
			}
		}
	})

	// Every product still gets a slot; the unprocessed tail is degenerate.
	require.Len(t, results, 10)
	for i, r := range results {
		assert.Equal(t, products[i].ID, r.ProductID)
	}
	assert.Less(t, client.CallCount(), 10, "cancellation should stop launching new groups")
}
