package model

const (
	FailureProvider  = "provider"
	FailureTransport = "transport"
)

// Failure describes why a market-data call produced a degraded result.
// Provider failures carry the raw response envelope in Payload.
type Failure struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Payload map[string]any `json:"payload,omitempty"`
}

type StockQuote struct {
	Ticker           string `json:"ticker"`
	Price            string `json:"price"`
	ChangeAmount     string `json:"change_amount"`
	ChangePercentage string `json:"change_percentage"`
	Volume           string `json:"volume"`
}

type MoversSnapshot struct {
	TopGainers         []StockQuote `json:"top_gainers"`
	TopLosers          []StockQuote `json:"top_losers"`
	MostActivelyTraded []StockQuote `json:"most_actively_traded"`
	Error              *Failure     `json:"error"`
}

// EmptyMovers returns a snapshot with no quotes and the given failure.
func EmptyMovers(f *Failure) MoversSnapshot {
	return MoversSnapshot{
		TopGainers:         []StockQuote{},
		TopLosers:          []StockQuote{},
		MostActivelyTraded: []StockQuote{},
		Error:              f,
	}
}

type DailyBar struct {
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

// TimeSeries maps YYYY-MM-DD dates to bars. Iteration order is random;
// sort the keys before presenting.
type TimeSeries map[string]DailyBar

type SeriesResult struct {
	Series TimeSeries
	Err    *Failure
}

type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}
