package promptctx

import (
	"strings"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

const sectionSeparator = "\n\n"

// Input is everything gathered for one request. A nil Movers means movers
// were not fetched; an empty Symbol means no symbol is active.
type Input struct {
	Movers     *model.MoversSnapshot
	TimeSeries model.TimeSeries
	Symbol     string
	News       []model.NewsArticle
	SymbolNews []model.NewsArticle
}

type Bundle struct {
	FormattedContext string
	PromptAddition   string
	Raw              Input
}

// Aggregate orders sections by relevance: active symbol, movers, price
// history, then either symbol news or general news.
func Aggregate(in Input) Bundle {
	formatted := FormatContext(in)
	return Bundle{
		FormattedContext: formatted,
		PromptAddition:   WrapPrompt(formatted),
		Raw:              in,
	}
}

func FormatContext(in Input) string {
	var parts []string

	if in.Symbol != "" {
		parts = append(parts, "User is currently viewing/searching for: "+in.Symbol)
	}

	if in.Movers != nil {
		parts = append(parts,
			SerializeStocks(in.Movers.TopGainers, "Top Gainers"),
			SerializeStocks(in.Movers.TopLosers, "Top Losers"),
			SerializeStocks(in.Movers.MostActivelyTraded, "Most Actively Traded"),
		)
	}

	if len(in.TimeSeries) > 0 && in.Symbol != "" {
		parts = append(parts, SerializeTimeSeries(in.TimeSeries, in.Symbol))
	}

	symbolNews := len(in.SymbolNews) > 0 && in.Symbol != ""
	if symbolNews {
		parts = append(parts, SerializeSymbolNews(in.SymbolNews, in.Symbol))
	}

	if len(in.News) > 0 && !symbolNews {
		parts = append(parts, SerializeNews(in.News))
	}

	return strings.Join(parts, sectionSeparator)
}

// WrapPrompt frames a formatted context for the system prompt. Blank
// contexts produce no framing at all.
func WrapPrompt(formatted string) string {
	if strings.TrimSpace(formatted) == "" {
		return ""
	}

	return "\nYou have access to the following current market data and context:\n\n" +
		formatted +
		"\n\nUse this data to inform your responses. When making recommendations or analysis, " +
		"refer to specific stocks, prices, and trends visible in this data. " +
		"You can assume the user has this same information on their screen."
}
