package handler

import (
	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/internal/service"
)

type ConsultRequest struct {
	Question string `json:"question"`
	Symbol   string `json:"symbol" binding:"omitempty,max=16"`
}

type ConsultForm struct {
	Question string `form:"question"`
}

type SearchQuery struct {
	Symbol string `form:"symbol" binding:"omitempty,max=16"`
}

type ChatTurnResponse struct {
	Question string  `json:"question"`
	Answer   *string `json:"answer"`
	Error    *string `json:"error"`
}

type FailureResponse struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Payload map[string]any `json:"payload,omitempty"`
}

type MoversResponse struct {
	TopGainers         []model.StockQuote `json:"top_gainers"`
	TopLosers          []model.StockQuote `json:"top_losers"`
	MostActivelyTraded []model.StockQuote `json:"most_actively_traded"`
	Error              *FailureResponse   `json:"error"`
}

type PageResponse struct {
	Data        MoversResponse            `json:"data"`
	Symbol      *string                   `json:"symbol"`
	TimeSeries  map[string]model.DailyBar `json:"time_series"`
	SearchError *FailureResponse          `json:"search_error"`
	ChatHistory []ChatTurnResponse        `json:"chat_history"`
	News        []model.NewsArticle       `json:"news"`
	SymbolNews  []model.NewsArticle       `json:"symbol_news"`
}

func toChatTurnResponse(t model.ChatTurn) ChatTurnResponse {
	return ChatTurnResponse{
		Question: t.Question,
		Answer:   t.Answer,
		Error:    t.Error,
	}
}

func toFailureResponse(f *model.Failure) *FailureResponse {
	if f == nil {
		return nil
	}
	return &FailureResponse{
		Kind:    f.Kind,
		Message: f.Message,
		Payload: f.Payload,
	}
}

func toPageResponse(v service.PageView) PageResponse {
	history := make([]ChatTurnResponse, 0, len(v.ChatHistory))
	for _, t := range v.ChatHistory {
		history = append(history, toChatTurnResponse(t))
	}

	res := PageResponse{
		Data: MoversResponse{
			TopGainers:         v.Movers.TopGainers,
			TopLosers:          v.Movers.TopLosers,
			MostActivelyTraded: v.Movers.MostActivelyTraded,
			Error:              toFailureResponse(v.Movers.Error),
		},
		TimeSeries:  v.TimeSeries,
		SearchError: toFailureResponse(v.SearchError),
		ChatHistory: history,
		News:        v.News,
		SymbolNews:  v.SymbolNews,
	}

	if v.Symbol != "" {
		symbol := v.Symbol
		res.Symbol = &symbol
	}
	if res.News == nil {
		res.News = []model.NewsArticle{}
	}
	if res.SymbolNews == nil {
		res.SymbolNews = []model.NewsArticle{}
	}
	return res
}
