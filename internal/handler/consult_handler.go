package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Tramle26/ai-economic-consultant/internal/constant"
	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/internal/service"
)

type Asker interface {
	Ask(ctx context.Context, sess model.Session, req service.AskRequest) (model.Session, model.ChatTurn)
}

type ConsultHandler struct {
	chat     Asker
	sessions *Sessions
}

func NewConsultHandler(chat Asker, sessions *Sessions) *ConsultHandler {
	return &ConsultHandler{chat: chat, sessions: sessions}
}

// PostConsult answers one question. A model failure is still recorded in
// the session and returned as the turn, with status 500.
func (h *ConsultHandler) PostConsult(c *gin.Context) {
	var req ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.Error(err)
			return
		}
		if !errors.Is(err, io.EOF) {
			slog.Warn("invalid consult body", "error", err)
			c.Error(constant.ErrInvalidBody)
			return
		}
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.Error(constant.ErrEmptyQuestion)
		return
	}

	sess := h.sessions.Load(c)
	sess, turn := h.chat.Ask(c.Request.Context(), sess, service.AskRequest{
		Question:    question,
		Symbol:      req.Symbol,
		QuerySymbol: c.Query("symbol"),
	})
	h.sessions.Save(c, sess)

	status := http.StatusOK
	if turn.Error != nil {
		status = http.StatusInternalServerError
	}
	c.JSON(status, toChatTurnResponse(turn))
}
