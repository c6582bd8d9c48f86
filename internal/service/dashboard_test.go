package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

func pageMocks(data *mockFetcher) {
	data.On("FetchTopMovers", mock.Anything).Return(emptyMovers())
	data.On("FetchGeneralNews", mock.Anything).Return([]model.NewsArticle{{Title: "Macro"}})
}

func TestDashboardIndexClearsSymbol(t *testing.T) {
	data := new(mockFetcher)
	pageMocks(data)

	sess := model.NewSession("s1").SetSymbol("AAPL").AppendTurn(model.NewAnswerTurn("q", "a"))
	next, view := NewDashboard(data).Index(context.Background(), sess)

	assert.Equal(t, "", next.CurrentSymbol)
	assert.Equal(t, "", view.Symbol)
	assert.Len(t, view.ChatHistory, 1)
	assert.Len(t, view.News, 1)
	assert.Nil(t, view.SearchError)
}

func TestDashboardSearch(t *testing.T) {
	t.Run("remembers symbol", func(t *testing.T) {
		data := new(mockFetcher)
		pageMocks(data)
		series := model.TimeSeries{"2024-01-02": {Close: "10"}}
		data.On("FetchDailySeries", mock.Anything, "AAPL").Return(model.SeriesResult{Series: series})
		data.On("FetchSymbolNews", mock.Anything, "AAPL").Return([]model.NewsArticle{{Title: "Apple"}})

		next, view := NewDashboard(data).Search(context.Background(), model.NewSession("s1"), " aapl ")

		assert.Equal(t, "AAPL", next.CurrentSymbol)
		assert.Equal(t, "AAPL", view.Symbol)
		assert.Equal(t, series, view.TimeSeries)
		assert.Len(t, view.SymbolNews, 1)
	})

	t.Run("carries search error", func(t *testing.T) {
		data := new(mockFetcher)
		pageMocks(data)
		failure := &model.Failure{Kind: model.FailureProvider, Message: "alphavantage TIME_SERIES_DAILY_ADJUSTED: Invalid API call."}
		data.On("FetchDailySeries", mock.Anything, "ZZZZ").Return(model.SeriesResult{Err: failure})
		data.On("FetchSymbolNews", mock.Anything, "ZZZZ").Return([]model.NewsArticle{})

		next, view := NewDashboard(data).Search(context.Background(), model.NewSession("s1"), "zzzz")

		assert.Equal(t, "ZZZZ", next.CurrentSymbol)
		require.NotNil(t, view.SearchError)
		assert.Equal(t, failure, view.SearchError)
		assert.Nil(t, view.TimeSeries)
	})

	t.Run("empty symbol clears", func(t *testing.T) {
		data := new(mockFetcher)
		pageMocks(data)

		next, view := NewDashboard(data).Search(context.Background(), model.NewSession("s1").SetSymbol("AAPL"), "")

		assert.Equal(t, "", next.CurrentSymbol)
		assert.Equal(t, "", view.Symbol)
		data.AssertNotCalled(t, "FetchDailySeries", mock.Anything, mock.Anything)
	})
}

func TestDashboardClearChatKeepsSymbol(t *testing.T) {
	data := new(mockFetcher)
	pageMocks(data)

	sess := model.NewSession("s1").SetSymbol("AAPL").AppendTurn(model.NewAnswerTurn("q", "a"))
	next, view := NewDashboard(data).ClearChat(context.Background(), sess)

	assert.Empty(t, next.ChatHistory)
	assert.Empty(t, view.ChatHistory)
	assert.Equal(t, "AAPL", next.CurrentSymbol)
}
