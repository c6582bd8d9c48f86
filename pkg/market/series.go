package market

import (
	"context"
	"net/url"
	"strings"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

type avSeriesResponse struct {
	Series map[string]avDailyBar `json:"Time Series (Daily)"`
}

type avDailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"6. volume"`
}

func (c *AlphaVantageClient) DailySeries(ctx context.Context, symbol string) (model.TimeSeries, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY_ADJUSTED")
	params.Set("symbol", strings.ToUpper(symbol))

	var raw avSeriesResponse
	if err := c.Query(ctx, params, "Time Series (Daily)", &raw); err != nil {
		return nil, err
	}

	series := make(model.TimeSeries, len(raw.Series))
	for date, bar := range raw.Series {
		series[date] = model.DailyBar{
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		}
	}
	return series, nil
}
