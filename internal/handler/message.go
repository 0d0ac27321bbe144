package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aabiskar/portfolio-backend/internal/apperr"
	"github.com/aabiskar/portfolio-backend/internal/model"
	"github.com/aabiskar/portfolio-backend/internal/queue"
	"github.com/aabiskar/portfolio-backend/internal/repository"
	queue_publisher "github.com/aabiskar/portfolio-backend/internal/service"
)

// MessageStore is the persistence surface the message handlers need.
type MessageStore interface {
	Create(ctx context.Context, m *model.Message) error
	List(ctx context.Context) ([]model.Message, error)
	Delete(ctx context.Context, id string) error
}

type MessageHandler struct {
	Messages MessageStore
}

func NewMessageHandler(messages MessageStore) *MessageHandler {
	return &MessageHandler{Messages: messages}
}

type sendMessageReq struct {
	SenderName string `json:"senderName" form:"senderName"`
	Email      string `json:"email" form:"email"`
	Subject    string `json:"subject" form:"subject"`
	Message    string `json:"message" form:"message"`
}

// SendMessage handles POST /api/v1/message/send, the public contact form.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageReq
	if err := c.Bind(&req); err != nil {
		return apperr.New("Please fill in all fields!", 400)
	}
	req.SenderName = strings.TrimSpace(req.SenderName)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if req.SenderName == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return apperr.New("Please fill in all fields!", 400)
	}

	m := &model.Message{
		SenderName: req.SenderName,
		Email:      req.Email,
		Subject:    req.Subject,
		Message:    req.Message,
	}
	if err := h.Messages.Create(c.Request().Context(), m); err != nil {
		return err
	}

	// Best effort: the owner notification must not fail the submission.
	_ = queue_publisher.PublishMessageReceived(c.Request().Context(), queue.MessageReceivedEvent{
		MessageID:  m.ID,
		SenderName: m.SenderName,
		Email:      m.Email,
		Subject:    m.Subject,
		Message:    m.Message,
		ReceivedAt: m.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Message Sent",
		"data":    m,
	})
}

// GetAllMessages handles GET /api/v1/message/getall (dashboard only).
func (h *MessageHandler) GetAllMessages(c echo.Context) error {
	messages, err := h.Messages.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"messages": messages,
	})
}

// DeleteMessage handles DELETE /api/v1/message/delete/:id.
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id, err := paramID(c, "Message ID")
	if err != nil {
		return err
	}
	if err := h.Messages.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Message Already Deleted or Not Found", 404)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Message Deleted",
	})
}
