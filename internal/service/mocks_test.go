package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/pkg/market"
	"github.com/Tramle26/ai-economic-consultant/pkg/news"
)

type mockMarketClient struct {
	mock.Mock
}

func (m *mockMarketClient) DailySeries(ctx context.Context, symbol string) (model.TimeSeries, error) {
	args := m.Called(ctx, symbol)
	series, _ := args.Get(0).(model.TimeSeries)
	return series, args.Error(1)
}

func (m *mockMarketClient) TopMovers(ctx context.Context) (*market.Movers, error) {
	args := m.Called(ctx)
	movers, _ := args.Get(0).(*market.Movers)
	return movers, args.Error(1)
}

type mockNewsClient struct {
	mock.Mock
}

func (m *mockNewsClient) Fetch(ctx context.Context, q news.Query) ([]model.NewsArticle, error) {
	args := m.Called(ctx, q)
	articles, _ := args.Get(0).([]model.NewsArticle)
	return articles, args.Error(1)
}

func (m *mockNewsClient) Name() string {
	return "MockNews"
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchDailySeries(ctx context.Context, symbol string) model.SeriesResult {
	return m.Called(ctx, symbol).Get(0).(model.SeriesResult)
}

func (m *mockFetcher) FetchTopMovers(ctx context.Context) model.MoversSnapshot {
	return m.Called(ctx).Get(0).(model.MoversSnapshot)
}

func (m *mockFetcher) FetchGeneralNews(ctx context.Context) []model.NewsArticle {
	articles, _ := m.Called(ctx).Get(0).([]model.NewsArticle)
	return articles
}

func (m *mockFetcher) FetchSymbolNews(ctx context.Context, symbol string) []model.NewsArticle {
	articles, _ := m.Called(ctx, symbol).Get(0).([]model.NewsArticle)
	return articles
}

type mockResponder struct {
	mock.Mock
}

func (m *mockResponder) Respond(ctx context.Context, question, marketContext string) (string, error) {
	args := m.Called(ctx, question, marketContext)
	return args.String(0), args.Error(1)
}
