package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/internal/trace"
	"github.com/Tramle26/ai-economic-consultant/pkg/market"
	"github.com/Tramle26/ai-economic-consultant/pkg/news"
)

type MarketClient interface {
	DailySeries(ctx context.Context, symbol string) (model.TimeSeries, error)
	TopMovers(ctx context.Context) (*market.Movers, error)
}

// MarketDataFetcher is the degraded-result view of the providers used by
// the chat and page flows. None of its methods fail outright.
type MarketDataFetcher interface {
	FetchDailySeries(ctx context.Context, symbol string) model.SeriesResult
	FetchTopMovers(ctx context.Context) model.MoversSnapshot
	FetchGeneralNews(ctx context.Context) []model.NewsArticle
	FetchSymbolNews(ctx context.Context, symbol string) []model.NewsArticle
}

type MarketData struct {
	market      MarketClient
	news        news.NewsClient
	newsEnabled bool
}

// NewMarketData wires the providers. With newsEnabled false the news
// methods return empty lists without calling out.
func NewMarketData(m MarketClient, n news.NewsClient, newsEnabled bool) *MarketData {
	return &MarketData{market: m, news: n, newsEnabled: newsEnabled}
}

func (d *MarketData) FetchDailySeries(ctx context.Context, symbol string) model.SeriesResult {
	ctx, span := trace.StartSpan(ctx, "market.DailySeries", attribute.String("symbol", symbol))
	defer span.End()

	series, err := d.market.DailySeries(ctx, symbol)
	if err != nil {
		trace.RecordError(span, err)
		slog.Warn("daily series unavailable", "symbol", symbol, "error", err)
		return model.SeriesResult{Err: toFailure(err)}
	}
	return model.SeriesResult{Series: series}
}

func (d *MarketData) FetchTopMovers(ctx context.Context) model.MoversSnapshot {
	ctx, span := trace.StartSpan(ctx, "market.TopMovers")
	defer span.End()

	movers, err := d.market.TopMovers(ctx)
	if err != nil {
		trace.RecordError(span, err)
		slog.Warn("top movers unavailable", "error", err)
		return model.EmptyMovers(toFailure(err))
	}

	return model.MoversSnapshot{
		TopGainers:         movers.TopGainers,
		TopLosers:          movers.TopLosers,
		MostActivelyTraded: movers.MostActivelyTraded,
	}
}

func (d *MarketData) FetchGeneralNews(ctx context.Context) []model.NewsArticle {
	return d.fetchNews(ctx, news.Query{Topic: news.GeneralTopic})
}

func (d *MarketData) FetchSymbolNews(ctx context.Context, symbol string) []model.NewsArticle {
	return d.fetchNews(ctx, news.Query{Ticker: symbol})
}

// fetchNews never fails: a page without news still renders.
func (d *MarketData) fetchNews(ctx context.Context, q news.Query) []model.NewsArticle {
	if !d.newsEnabled || d.news == nil {
		return []model.NewsArticle{}
	}

	ctx, span := trace.StartSpan(ctx, "news.Fetch",
		attribute.String("source", d.news.Name()),
		attribute.String("ticker", q.Ticker),
		attribute.String("topic", q.Topic),
	)
	defer span.End()

	articles, err := d.news.Fetch(ctx, q)
	if err != nil {
		trace.RecordError(span, err)
		slog.Error("error fetching news", "source", d.news.Name(), "ticker", q.Ticker, "topic", q.Topic, "error", err)
		return []model.NewsArticle{}
	}
	return articles
}

func toFailure(err error) *model.Failure {
	var perr *market.ProviderError
	if errors.As(err, &perr) {
		return &model.Failure{
			Kind:    model.FailureProvider,
			Message: perr.Error(),
			Payload: perr.Payload,
		}
	}
	return &model.Failure{
		Kind:    model.FailureTransport,
		Message: err.Error(),
	}
}
