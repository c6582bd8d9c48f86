package news

import (
	"context"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

const (
	// MaxArticles caps a normalized feed regardless of the provider limit.
	MaxArticles = 50
	// RequestLimit is the limit parameter sent to providers that accept one.
	RequestLimit = 50

	GeneralTopic = "economy_macro"
)

// Query selects either topic news or news for a single ticker. Ticker wins
// when both are set.
type Query struct {
	Topic  string
	Ticker string
}

type NewsClient interface {
	Fetch(ctx context.Context, q Query) ([]model.NewsArticle, error)
	Name() string
}
