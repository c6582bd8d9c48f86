package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/pkg/market"
	"github.com/Tramle26/ai-economic-consultant/pkg/news"
)

func TestFetchDailySeries(t *testing.T) {
	series := model.TimeSeries{"2024-01-02": {Open: "1", Close: "2"}}

	testCases := []struct {
		name        string
		setupMock   func(m *mockMarketClient)
		wantSeries  bool
		wantFailure string
	}{
		{
			name: "success",
			setupMock: func(m *mockMarketClient) {
				m.On("DailySeries", mock.Anything, "AAPL").Return(series, nil)
			},
			wantSeries: true,
		},
		{
			name: "provider error keeps payload",
			setupMock: func(m *mockMarketClient) {
				m.On("DailySeries", mock.Anything, "AAPL").Return(nil, &market.ProviderError{
					Function: "TIME_SERIES_DAILY_ADJUSTED",
					Key:      "Time Series (Daily)",
					Payload:  map[string]any{"Error Message": "Invalid API call."},
				})
			},
			wantFailure: model.FailureProvider,
		},
		{
			name: "transport error",
			setupMock: func(m *mockMarketClient) {
				m.On("DailySeries", mock.Anything, "AAPL").Return(nil, errors.New("connection refused"))
			},
			wantFailure: model.FailureTransport,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			mc := new(mockMarketClient)
			tt.setupMock(mc)
			data := NewMarketData(mc, nil, false)

			res := data.FetchDailySeries(context.Background(), "AAPL")

			if tt.wantSeries {
				require.Nil(t, res.Err)
				assert.Equal(t, series, res.Series)
			} else {
				require.NotNil(t, res.Err)
				assert.Nil(t, res.Series)
				assert.Equal(t, tt.wantFailure, res.Err.Kind)
				assert.NotEmpty(t, res.Err.Message)
			}
			mc.AssertExpectations(t)
		})
	}
}

func TestFetchDailySeriesProviderPayload(t *testing.T) {
	mc := new(mockMarketClient)
	mc.On("DailySeries", mock.Anything, "ZZZZ").Return(nil, &market.ProviderError{
		Function: "TIME_SERIES_DAILY_ADJUSTED",
		Key:      "Time Series (Daily)",
		Payload:  map[string]any{"Note": "Thank you for using Alpha Vantage!"},
	})

	res := NewMarketData(mc, nil, false).FetchDailySeries(context.Background(), "ZZZZ")

	require.NotNil(t, res.Err)
	assert.Equal(t, "Thank you for using Alpha Vantage!", res.Err.Payload["Note"])
}

func TestFetchTopMovers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mc := new(mockMarketClient)
		mc.On("TopMovers", mock.Anything).Return(&market.Movers{
			TopGainers:         []model.StockQuote{{Ticker: "AAA"}},
			TopLosers:          []model.StockQuote{},
			MostActivelyTraded: []model.StockQuote{{Ticker: "CCC"}},
		}, nil)

		snap := NewMarketData(mc, nil, false).FetchTopMovers(context.Background())

		assert.Nil(t, snap.Error)
		assert.Len(t, snap.TopGainers, 1)
		assert.Equal(t, "CCC", snap.MostActivelyTraded[0].Ticker)
	})

	t.Run("failure yields empty lists and error", func(t *testing.T) {
		mc := new(mockMarketClient)
		mc.On("TopMovers", mock.Anything).Return(nil, errors.New("timeout"))

		snap := NewMarketData(mc, nil, false).FetchTopMovers(context.Background())

		require.NotNil(t, snap.Error)
		assert.Equal(t, model.FailureTransport, snap.Error.Kind)
		assert.NotNil(t, snap.TopGainers)
		assert.Empty(t, snap.TopGainers)
		assert.Empty(t, snap.TopLosers)
		assert.Empty(t, snap.MostActivelyTraded)
	})
}

func TestFetchNews(t *testing.T) {
	articles := []model.NewsArticle{{Title: "Fed holds rates", Source: "Reuters"}}

	t.Run("general uses economy topic", func(t *testing.T) {
		nc := new(mockNewsClient)
		nc.On("Fetch", mock.Anything, news.Query{Topic: news.GeneralTopic}).Return(articles, nil)

		got := NewMarketData(nil, nc, true).FetchGeneralNews(context.Background())

		assert.Equal(t, articles, got)
		nc.AssertExpectations(t)
	})

	t.Run("symbol uses ticker", func(t *testing.T) {
		nc := new(mockNewsClient)
		nc.On("Fetch", mock.Anything, news.Query{Ticker: "MSFT"}).Return(articles, nil)

		got := NewMarketData(nil, nc, true).FetchSymbolNews(context.Background(), "MSFT")

		assert.Equal(t, articles, got)
	})

	t.Run("failure degrades to empty", func(t *testing.T) {
		nc := new(mockNewsClient)
		nc.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		got := NewMarketData(nil, nc, true).FetchGeneralNews(context.Background())

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("disabled never calls out", func(t *testing.T) {
		nc := new(mockNewsClient)

		got := NewMarketData(nil, nc, false).FetchSymbolNews(context.Background(), "MSFT")

		assert.Empty(t, got)
		nc.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})
}
