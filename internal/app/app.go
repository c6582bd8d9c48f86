// Package app builds provider clients from configuration for the binaries.
package app

import (
	"fmt"
	"log/slog"

	"github.com/Tramle26/ai-economic-consultant/internal/config"
	"github.com/Tramle26/ai-economic-consultant/internal/service"
	"github.com/Tramle26/ai-economic-consultant/pkg/llm"
	"github.com/Tramle26/ai-economic-consultant/pkg/market"
	"github.com/Tramle26/ai-economic-consultant/pkg/news"
)

// NewMarketData wires Alpha Vantage and the configured news source. News is
// disabled when its provider has no key.
func NewMarketData(cfg *config.Config) *service.MarketData {
	av := market.NewAlphaVantageClient(cfg.AlphaVantage.APIKey, cfg.AlphaVantage.BaseURL)
	if !av.HasKey() {
		slog.Warn("ALPHAVANTAGE_API_KEY not set, market data requests will fail")
	}

	var newsClient news.NewsClient
	switch cfg.News.Provider {
	case config.ProviderFinnhub:
		newsClient = news.NewFinnHubClient(cfg.Finnhub.APIKey)
	default:
		newsClient = news.NewAlphaVantageClient(av)
	}

	newsEnabled := cfg.NewsAPIKey() != ""
	if !newsEnabled {
		slog.Warn("news API key not set, news disabled", "source", newsClient.Name())
	}

	return service.NewMarketData(av, newsClient, newsEnabled)
}

func NewResponder(cfg *config.Config) (llm.NamedResponder, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return llm.NewOpenAIClient(cfg.LLM.OpenAIAPIKey), nil
	case config.ProviderAnthropic:
		return llm.NewAnthropicClient(cfg.LLM.AnthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
