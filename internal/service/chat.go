package service

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/internal/promptctx"
	"github.com/Tramle26/ai-economic-consultant/internal/trace"
	"github.com/Tramle26/ai-economic-consultant/pkg/llm"
)

type AskRequest struct {
	Question string
	// Symbol comes from the request body, QuerySymbol from the URL.
	Symbol      string
	QuerySymbol string
}

type ChatService struct {
	data      MarketDataFetcher
	responder llm.Responder
}

func NewChatService(data MarketDataFetcher, responder llm.Responder) *ChatService {
	return &ChatService{data: data, responder: responder}
}

// ResolveSymbol picks the active symbol: request body first, then the
// symbol remembered in the session, then the query string. A body symbol
// that is present but blank resolves to no symbol.
func ResolveSymbol(bodySymbol, sessionSymbol, querySymbol string) string {
	if bodySymbol != "" {
		return strings.ToUpper(strings.TrimSpace(bodySymbol))
	}
	if sessionSymbol != "" {
		return sessionSymbol
	}
	return strings.ToUpper(querySymbol)
}

// BuildContext gathers movers and general news, plus series and symbol
// news when a symbol is given, and aggregates them. Calls run one after
// another.
func (s *ChatService) BuildContext(ctx context.Context, symbol string) promptctx.Bundle {
	movers := s.data.FetchTopMovers(ctx)
	generalNews := s.data.FetchGeneralNews(ctx)

	in := promptctx.Input{
		Movers: &movers,
		Symbol: symbol,
		News:   generalNews,
	}

	if symbol != "" {
		in.TimeSeries = s.data.FetchDailySeries(ctx, symbol).Series
		in.SymbolNews = s.data.FetchSymbolNews(ctx, symbol)
	}

	return promptctx.Aggregate(in)
}

// Ask answers one question and appends exactly one turn to the returned
// session. A model failure becomes an error turn.
func (s *ChatService) Ask(ctx context.Context, sess model.Session, req AskRequest) (model.Session, model.ChatTurn) {
	symbol := ResolveSymbol(req.Symbol, sess.CurrentSymbol, req.QuerySymbol)

	ctx, span := trace.StartSpan(ctx, "chat.Ask", attribute.String("symbol", symbol))
	defer span.End()

	bundle := s.BuildContext(ctx, symbol)

	answer, err := s.respond(ctx, req.Question, bundle.PromptAddition)

	var turn model.ChatTurn
	if err != nil {
		trace.RecordError(span, err)
		slog.Error("error answering question", "symbol", symbol, "error", err)
		turn = model.NewErrorTurn(req.Question, err.Error())
	} else {
		turn = model.NewAnswerTurn(req.Question, answer)
	}

	return sess.AppendTurn(turn), turn
}

func (s *ChatService) respond(ctx context.Context, question, promptAddition string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Respond", attribute.Int("context_chars", len(promptAddition)))
	defer span.End()

	answer, err := s.responder.Respond(ctx, question, promptAddition)
	if err != nil {
		trace.RecordError(span, err)
		return "", err
	}
	return answer, nil
}
