// Package promptctx turns fetched market data into the text block appended
// to the assistant's system prompt.
package promptctx

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

// Per-section caps. They bound the prompt size and are not configurable.
const (
	MaxStocksPerCategory = 5
	MaxSeriesDays        = 5
	MaxGeneralHeadlines  = 5
	MaxSymbolHeadlines   = 10
	MaxSummaryChars      = 100
)

const missing = "N/A"

func orNA(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func SerializeStocks(stocks []model.StockQuote, category string) string {
	if len(stocks) == 0 {
		return category + ": No data available"
	}

	lines := []string{category + ":"}
	for _, s := range stocks[:min(len(stocks), MaxStocksPerCategory)] {
		lines = append(lines, fmt.Sprintf("  %s: $%s (%s %s) Volume: %s",
			orNA(s.Ticker), orNA(s.Price), orNA(s.ChangeAmount), orNA(s.ChangePercentage), orNA(s.Volume)))
	}
	return strings.Join(lines, "\n")
}

// SerializeTimeSeries lists the most recent days first. Dates are
// YYYY-MM-DD so a reverse string sort is a reverse date sort.
func SerializeTimeSeries(series model.TimeSeries, symbol string) string {
	if len(series) == 0 {
		return fmt.Sprintf("Time Series for %s: No data available", symbol)
	}

	dates := make([]string, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	lines := []string{fmt.Sprintf("Time Series for %s (Last %d days):", symbol, MaxSeriesDays)}
	for _, d := range dates[:min(len(dates), MaxSeriesDays)] {
		bar := series[d]
		lines = append(lines, fmt.Sprintf("  %s: Open $%s, Close $%s, High $%s, Low $%s, Volume %s",
			d, orNA(bar.Open), orNA(bar.Close), orNA(bar.High), orNA(bar.Low), orNA(bar.Volume)))
	}
	return strings.Join(lines, "\n")
}

func SerializeNews(articles []model.NewsArticle) string {
	if len(articles) == 0 {
		return "Economic News: No articles available"
	}

	lines := []string{"Economic News Headlines:"}
	for _, a := range articles[:min(len(articles), MaxGeneralHeadlines)] {
		lines = append(lines, headline(a))
	}
	return strings.Join(lines, "\n")
}

// SerializeSymbolNews keeps more entries than SerializeNews and adds a
// shortened summary line under each headline.
func SerializeSymbolNews(articles []model.NewsArticle, symbol string) string {
	if len(articles) == 0 {
		return fmt.Sprintf("News for %s: No articles available", symbol)
	}

	lines := []string{fmt.Sprintf("Recent News for %s (Top %d most relevant articles):", symbol, MaxSymbolHeadlines)}
	for _, a := range articles[:min(len(articles), MaxSymbolHeadlines)] {
		lines = append(lines, headline(a))
		if a.Description != "" {
			lines = append(lines, "    Summary: "+truncate(a.Description, MaxSummaryChars))
		}
	}
	return strings.Join(lines, "\n")
}

func headline(a model.NewsArticle) string {
	source := a.Source
	if source == "" {
		source = "Unknown"
	}
	return fmt.Sprintf("  - %s (Source: %s, %s)", orNA(a.Title), source, orNA(a.PublishedAt))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
