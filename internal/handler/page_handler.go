package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tramle26/ai-economic-consultant/internal/constant"
	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/internal/service"
)

type PageBuilder interface {
	Index(ctx context.Context, sess model.Session) (model.Session, service.PageView)
	Search(ctx context.Context, sess model.Session, symbol string) (model.Session, service.PageView)
	ClearChat(ctx context.Context, sess model.Session) (model.Session, service.PageView)
	Page(ctx context.Context, sess model.Session) service.PageView
}

type PageHandler struct {
	pages    PageBuilder
	chat     Asker
	sessions *Sessions
}

func NewPageHandler(pages PageBuilder, chat Asker, sessions *Sessions) *PageHandler {
	return &PageHandler{pages: pages, chat: chat, sessions: sessions}
}

func (h *PageHandler) GetIndex(c *gin.Context) {
	sess := h.sessions.Load(c)
	sess, view := h.pages.Index(c.Request.Context(), sess)
	h.sessions.Save(c, sess)

	c.JSON(http.StatusOK, toPageResponse(view))
}

func (h *PageHandler) GetSearch(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(err)
		return
	}

	sess := h.sessions.Load(c)
	sess, view := h.pages.Search(c.Request.Context(), sess, q.Symbol)
	h.sessions.Save(c, sess)

	c.JSON(http.StatusOK, toPageResponse(view))
}

// PostConsult is the form-post variant of the chat endpoint. The symbol
// comes only from the session.
func (h *PageHandler) PostConsult(c *gin.Context) {
	var form ConsultForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(constant.ErrInvalidBody)
		return
	}

	question := strings.TrimSpace(form.Question)
	if question == "" {
		c.Error(constant.ErrEmptyQuestion)
		return
	}

	sess := h.sessions.Load(c)
	sess, _ = h.chat.Ask(c.Request.Context(), sess, service.AskRequest{Question: question})
	h.sessions.Save(c, sess)

	c.JSON(http.StatusOK, toPageResponse(h.pages.Page(c.Request.Context(), sess)))
}

func (h *PageHandler) PostClearChat(c *gin.Context) {
	sess := h.sessions.Load(c)
	sess, view := h.pages.ClearChat(c.Request.Context(), sess)
	h.sessions.Save(c, sess)

	c.JSON(http.StatusOK, toPageResponse(view))
}
