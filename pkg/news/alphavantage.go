package news

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/pkg/market"
)

type AlphaVantageClient struct {
	av *market.AlphaVantageClient
}

func NewAlphaVantageClient(av *market.AlphaVantageClient) *AlphaVantageClient {
	return &AlphaVantageClient{av: av}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Fetch(ctx context.Context, q Query) ([]model.NewsArticle, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("limit", strconv.Itoa(RequestLimit))
	if q.Ticker != "" {
		params.Set("tickers", strings.ToUpper(q.Ticker))
	} else if q.Topic != "" {
		params.Set("topics", q.Topic)
	}

	var raw avResponse
	if err := c.av.Query(ctx, params, "feed", &raw); err != nil {
		return nil, err
	}

	items := make([]rawArticle, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		items = append(items, rawArticle{
			Title:         item.Title,
			Summary:       item.Summary,
			URL:           item.URL,
			BannerImage:   item.BannerImage,
			SourceLogo:    item.SourceLogo,
			Source:        item.Source,
			TimePublished: item.TimePublished,
		})
	}

	return normalize(items), nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	BannerImage   string `json:"banner_image"`
	SourceLogo    string `json:"source_logo"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
