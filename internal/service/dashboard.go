package service

import (
	"context"
	"strings"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

// PageView is everything the landing and search pages display.
type PageView struct {
	Movers      model.MoversSnapshot
	Symbol      string
	TimeSeries  model.TimeSeries
	SearchError *model.Failure
	ChatHistory []model.ChatTurn
	News        []model.NewsArticle
	SymbolNews  []model.NewsArticle
}

type Dashboard struct {
	data MarketDataFetcher
}

func NewDashboard(data MarketDataFetcher) *Dashboard {
	return &Dashboard{data: data}
}

// Index shows the landing page and forgets any searched symbol.
func (d *Dashboard) Index(ctx context.Context, sess model.Session) (model.Session, PageView) {
	sess = sess.ClearSymbol()
	return sess, d.Page(ctx, sess)
}

// Search remembers symbol for later chat questions, or clears the memory
// when symbol is empty.
func (d *Dashboard) Search(ctx context.Context, sess model.Session, symbol string) (model.Session, PageView) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		sess = sess.ClearSymbol()
		return sess, d.Page(ctx, sess)
	}

	series := d.data.FetchDailySeries(ctx, symbol)
	symbolNews := d.data.FetchSymbolNews(ctx, symbol)
	sess = sess.SetSymbol(symbol)

	view := d.Page(ctx, sess)
	view.Symbol = symbol
	view.TimeSeries = series.Series
	view.SearchError = series.Err
	view.SymbolNews = symbolNews
	return sess, view
}

func (d *Dashboard) ClearChat(ctx context.Context, sess model.Session) (model.Session, PageView) {
	sess = sess.ClearChat()
	return sess, d.Page(ctx, sess)
}

// Page is the symbol-less view: movers, general news and chat history.
func (d *Dashboard) Page(ctx context.Context, sess model.Session) PageView {
	return PageView{
		Movers:      d.data.FetchTopMovers(ctx),
		News:        d.data.FetchGeneralNews(ctx),
		ChatHistory: sess.ChatHistory,
	}
}
