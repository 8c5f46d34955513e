package main

import (
	"fmt"

	"github.com/closetarchive/archivist/internal/brandbook"
	"github.com/closetarchive/archivist/internal/common"
	"github.com/closetarchive/archivist/internal/config"
	"github.com/closetarchive/archivist/internal/engine"
	"github.com/closetarchive/archivist/internal/fastpath"
	"github.com/closetarchive/archivist/internal/llm"
	"github.com/closetarchive/archivist/internal/signal"
)

// buildEngine wires the full pipeline from configuration: local signal
// sources, the model fallback chain, and the fusion engine. The returned
// cleanup stops the chain's rate limiter.
func buildEngine() (*engine.Engine, func(), error) {
	settings, err := config.LoadModelSettings()
	if err != nil {
		return nil, nil, common.NewUserError(
			"model configuration is incomplete; set gemini.api_key in the config file or ARCHIVIST_GEMINI_API_KEY", err)
	}

	clients := make([]llm.Client, 0, len(settings.Models))
	for _, modelID := range settings.Models {
		client, clientErr := llm.NewGeminiClient(llm.GeminiConfig{
			APIKey: settings.APIKey,
			Model:  modelID,
		})
		if clientErr != nil {
			return nil, nil, fmt.Errorf("model %s: %w", modelID, clientErr)
		}
		clients = append(clients, client)
	}

	chain, err := llm.NewChain(llm.ChainConfig{
		RequestsPerMinute: settings.RequestsPerMinute,
	}, clients...)
	if err != nil {
		return nil, nil, fmt.Errorf("model chain: %w", err)
	}

	eng, err := engine.New(
		signal.NewLexicalScorer(),
		signal.NewDefaultContextAnalyzer(),
		signal.NewBrandScorer(brandbook.New()),
		fastpath.New(),
		chain,
		llm.NewImageFetcher(),
		config.LoadEngineConfig(),
	)
	if err != nil {
		chain.Close()
		return nil, nil, err
	}

	return eng, chain.Close, nil
}
