package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/eventdash/internal/core"
	"github.com/sandevgo/eventdash/pkg/log"
)

type EventComposer interface {
	Compose(ctx context.Context, taskID string) (core.EventAggregate, error)
}

type ChatService interface {
	Converse(ctx context.Context, prompt string, data *core.EventAggregate, history []core.ChatTurn) (string, error)
}

type Handler struct {
	composer EventComposer
	chat     ChatService
}

func NewHandler(composer EventComposer, chat ChatService) *Handler {
	return &Handler{
		composer: composer,
		chat:     chat,
	}
}

// GetEvent composes the aggregate for a task id. Every failure kind
// collapses to a 500 with the error message in the body; the frontend
// only distinguishes ok from not-ok.
func (h *Handler) GetEvent(c *gin.Context) {
	ctx := c.Request.Context()
	taskID := c.Param("taskId")

	data, err := h.composer.Compose(ctx, taskID)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("taskId", taskID).Msg("event composition failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// ExportEvent serves the same aggregate as a JSON file download.
func (h *Handler) ExportEvent(c *gin.Context) {
	ctx := c.Request.Context()
	taskID := c.Param("taskId")

	data, err := h.composer.Compose(ctx, taskID)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("taskId", taskID).Msg("event export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("jindal-data-%d.json", time.Now().UnixMilli())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, data)
}

type chatRequest struct {
	Prompt   string               `json:"prompt"`
	Data     *core.EventAggregate `json:"data"`
	Messages []core.ChatTurn      `json:"messages"`
}

func (h *Handler) PostChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text, err := h.chat.Converse(ctx, req.Prompt, req.Data, req.Messages)
	if err != nil {
		status := http.StatusInternalServerError
		var ve *core.ValidationError
		if errors.As(err, &ve) {
			status = http.StatusBadRequest
		} else {
			log.FromCtx(ctx).Error().Err(err).Msg("chat turn failed")
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   core.AppName,
		"timestamp": time.Now(),
	})
}
