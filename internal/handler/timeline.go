package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aabiskar/portfolio-backend/internal/apperr"
	"github.com/aabiskar/portfolio-backend/internal/model"
	"github.com/aabiskar/portfolio-backend/internal/repository"
)

// TimelineStore is the persistence surface the timeline handlers need.
type TimelineStore interface {
	Create(ctx context.Context, t *model.Timeline) error
	List(ctx context.Context) ([]model.Timeline, error)
	Delete(ctx context.Context, id string) error
}

type TimelineHandler struct {
	Timelines TimelineStore
}

func NewTimelineHandler(timelines TimelineStore) *TimelineHandler {
	return &TimelineHandler{Timelines: timelines}
}

type postTimelineReq struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	From        string `json:"from" form:"from"`
	To          string `json:"to" form:"to"`
}

// PostTimeline handles POST /api/v1/timeline/add.
func (h *TimelineHandler) PostTimeline(c echo.Context) error {
	var req postTimelineReq
	if err := c.Bind(&req); err != nil {
		return apperr.New("Title and Description are Required!", 400)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return apperr.New("Title and Description are Required!", 400)
	}

	t := &model.Timeline{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Timeline:    model.Period{From: req.From, To: req.To},
	}
	if err := h.Timelines.Create(c.Request().Context(), t); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Timeline Added",
		"timeline": t,
	})
}

// DeleteTimeline handles DELETE /api/v1/timeline/delete/:id.
func (h *TimelineHandler) DeleteTimeline(c echo.Context) error {
	id, err := paramID(c, "Timeline ID")
	if err != nil {
		return err
	}
	if err := h.Timelines.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New("Timeline not Found!", 404)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Timeline deleted!",
	})
}

// GetAllTimelines handles GET /api/v1/timeline/getall (public).
func (h *TimelineHandler) GetAllTimelines(c echo.Context) error {
	timelines, err := h.Timelines.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"timelines": timelines,
	})
}
