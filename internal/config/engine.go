package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/closetarchive/archivist/internal/common"
	"github.com/closetarchive/archivist/internal/engine"
)

// ModelSettings configures the model chain.
type ModelSettings struct {
	APIKey            string
	Models            []string
	RequestsPerMinute int
}

// LoadEngineConfig builds the engine configuration from viper, falling back
// to the defaults for anything unset.
func LoadEngineConfig() engine.Config {
	cfg := engine.DefaultConfig()

	if viper.IsSet("engine.weights.model_final") {
		cfg.Weights.ModelFinal = viper.GetFloat64("engine.weights.model_final")
	}
	if viper.IsSet("engine.weights.model_brand") {
		cfg.Weights.ModelBrand = viper.GetFloat64("engine.weights.model_brand")
	}
	if viper.IsSet("engine.weights.model_visual") {
		cfg.Weights.ModelVisual = viper.GetFloat64("engine.weights.model_visual")
	}
	if viper.IsSet("engine.weights.brand_tier") {
		cfg.Weights.BrandTier = viper.GetFloat64("engine.weights.brand_tier")
	}
	if viper.IsSet("engine.weights.lexical") {
		cfg.Weights.Lexical = viper.GetFloat64("engine.weights.lexical")
	}
	if viper.IsSet("engine.weights.contextual") {
		cfg.Weights.Contextual = viper.GetFloat64("engine.weights.contextual")
	}
	if viper.IsSet("engine.decision_threshold") {
		cfg.DecisionThreshold = viper.GetFloat64("engine.decision_threshold")
	}
	if viper.IsSet("engine.fast_path_threshold") {
		cfg.FastPathThreshold = viper.GetInt("engine.fast_path_threshold")
	}
	if viper.IsSet("engine.concurrency") {
		cfg.Concurrency = viper.GetInt("engine.concurrency")
	}
	if viper.IsSet("engine.group_delay_ms") {
		cfg.GroupDelayMillis = viper.GetInt("engine.group_delay_ms")
	}

	return cfg
}

// LoadModelSettings reads the model chain configuration. The API key is
// required; everything else has defaults.
func LoadModelSettings() (ModelSettings, error) {
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		return ModelSettings{}, common.ErrMissingAPIKey
	}

	models := viper.GetStringSlice("gemini.models")
	if len(models) == 0 {
		models = []string{"gemini-2.0-flash", "gemini-1.5-flash"}
	}
	for i, m := range models {
		models[i] = strings.TrimSpace(m)
	}

	rpm := viper.GetInt("gemini.requests_per_minute")
	if rpm <= 0 {
		rpm = 60
	}

	return ModelSettings{
		APIKey:            apiKey,
		Models:            models,
		RequestsPerMinute: rpm,
	}, nil
}
