package market

import (
	"context"
	"net/url"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

// MaxMovers caps each movers category.
const MaxMovers = 10

type Movers struct {
	TopGainers         []model.StockQuote `json:"top_gainers"`
	TopLosers          []model.StockQuote `json:"top_losers"`
	MostActivelyTraded []model.StockQuote `json:"most_actively_traded"`
}

// TopMovers requires top_gainers in the response; a missing losers or
// most-active list decodes as empty.
func (c *AlphaVantageClient) TopMovers(ctx context.Context) (*Movers, error) {
	params := url.Values{}
	params.Set("function", "TOP_GAINERS_LOSERS")

	var raw Movers
	if err := c.Query(ctx, params, "top_gainers", &raw); err != nil {
		return nil, err
	}

	return &Movers{
		TopGainers:         capQuotes(raw.TopGainers),
		TopLosers:          capQuotes(raw.TopLosers),
		MostActivelyTraded: capQuotes(raw.MostActivelyTraded),
	}, nil
}

func capQuotes(quotes []model.StockQuote) []model.StockQuote {
	if quotes == nil {
		return []model.StockQuote{}
	}
	if len(quotes) > MaxMovers {
		return quotes[:MaxMovers]
	}
	return quotes
}
