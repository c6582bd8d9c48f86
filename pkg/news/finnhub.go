package news

import (
	"context"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

// companyNewsWindow is how far back company news is requested.
const companyNewsWindow = 7 * 24 * time.Hour

type FinnHubClient struct {
	client *finnhub.DefaultApiService
	now    func() time.Time
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client, now: time.Now}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(ctx context.Context, q Query) ([]model.NewsArticle, error) {
	if q.Ticker != "" {
		return c.companyNews(ctx, strings.ToUpper(q.Ticker))
	}
	return c.marketNews(ctx)
}

func (c *FinnHubClient) marketNews(ctx context.Context) ([]model.NewsArticle, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	items := make([]rawArticle, 0, len(res))
	for _, n := range res {
		items = append(items, finnhubArticle(n.Headline, n.Summary, n.Url, n.Image, n.Source, n.Datetime))
	}
	return normalize(items), nil
}

func (c *FinnHubClient) companyNews(ctx context.Context, symbol string) ([]model.NewsArticle, error) {
	to := c.now()
	from := to.Add(-companyNewsWindow)

	res, _, err := c.client.CompanyNews(ctx).
		Symbol(symbol).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, err
	}

	items := make([]rawArticle, 0, len(res))
	for _, n := range res {
		items = append(items, finnhubArticle(n.Headline, n.Summary, n.Url, n.Image, n.Source, n.Datetime))
	}
	return normalize(items), nil
}

func finnhubArticle(headline, summary, url, image, source *string, datetime *int64) rawArticle {
	a := rawArticle{
		Title:       deref(headline),
		Summary:     deref(summary),
		URL:         deref(url),
		BannerImage: deref(image),
		Source:      deref(source),
	}
	if datetime != nil && *datetime > 0 {
		a.TimePublished = time.Unix(*datetime, 0).UTC().Format("20060102T150405")
	}
	return a
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
