package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aabiskar/portfolio-backend/internal/model"
	"github.com/aabiskar/portfolio-backend/internal/repository"
)

type fakeTimelineStore struct {
	timelines map[string]model.Timeline
	created   []model.Timeline
}

func newFakeTimelineStore(timelines ...model.Timeline) *fakeTimelineStore {
	s := &fakeTimelineStore{timelines: map[string]model.Timeline{}}
	for _, tl := range timelines {
		s.timelines[tl.ID] = tl
	}
	return s
}

func (s *fakeTimelineStore) Create(_ context.Context, tl *model.Timeline) error {
	tl.ID = "e5f6a7b8-0000-4000-8000-000000000001"
	s.timelines[tl.ID] = *tl
	s.created = append(s.created, *tl)
	return nil
}

func (s *fakeTimelineStore) List(_ context.Context) ([]model.Timeline, error) {
	out := make([]model.Timeline, 0, len(s.timelines))
	for _, tl := range s.timelines {
		out = append(out, tl)
	}
	return out, nil
}

func (s *fakeTimelineStore) Delete(_ context.Context, id string) error {
	if _, ok := s.timelines[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.timelines, id)
	return nil
}

func registerTimelineRoutes(h *TimelineHandler) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		e.POST("/api/v1/timeline/add", h.PostTimeline)
		e.DELETE("/api/v1/timeline/delete/:id", h.DeleteTimeline)
		e.GET("/api/v1/timeline/getall", h.GetAllTimelines)
	}
}

func TestPostTimeline_Success(t *testing.T) {
	store := newFakeTimelineStore()
	h := NewTimelineHandler(store)

	payload := `{"title":"BSc Computer Science","description":"Undergraduate degree","from":"2019","to":"2023"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline/add", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(registerTimelineRoutes(h), req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "Timeline Added", got["message"])

	require.Len(t, store.created, 1)
	created := store.created[0]
	assert.Equal(t, "BSc Computer Science", created.Title)
	assert.Equal(t, "2019", created.Timeline.From)
	assert.Equal(t, "2023", created.Timeline.To)

	entry, ok := got["timeline"].(map[string]any)
	require.True(t, ok)
	period, ok := entry["timeline"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2019", period["from"])
}

func TestPostTimeline_MissingFields(t *testing.T) {
	store := newFakeTimelineStore()
	h := NewTimelineHandler(store)

	payload := `{"title":"BSc Computer Science","description":"  ","from":"2019"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline/add", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(registerTimelineRoutes(h), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Title and Description are Required!", got["message"])
	assert.Empty(t, store.created)
}

func TestPostTimeline_EmptyPeriodAllowed(t *testing.T) {
	store := newFakeTimelineStore()
	h := NewTimelineHandler(store)

	payload := `{"title":"Freelance","description":"Contract work"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline/add", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(registerTimelineRoutes(h), req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.created, 1)
	assert.Empty(t, store.created[0].Timeline.From)
	assert.Empty(t, store.created[0].Timeline.To)
}

func TestDeleteTimeline_Twice(t *testing.T) {
	existing := model.Timeline{ID: "e5f6a7b8-0000-4000-8000-000000000042", Title: "BSc"}
	h := NewTimelineHandler(newFakeTimelineStore(existing))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/timeline/delete/"+existing.ID, nil)
	rec := serve(registerTimelineRoutes(h), req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Timeline deleted!", decodeBody(t, rec)["message"])

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/timeline/delete/"+existing.ID, nil)
	rec = serve(registerTimelineRoutes(h), req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Timeline not Found!", decodeBody(t, rec)["message"])
}

func TestDeleteTimeline_InvalidID(t *testing.T) {
	h := NewTimelineHandler(newFakeTimelineStore())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/timeline/delete/not-a-uuid", nil)
	rec := serve(registerTimelineRoutes(h), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Timeline ID", decodeBody(t, rec)["message"])
}

func TestGetAllTimelines(t *testing.T) {
	h := NewTimelineHandler(newFakeTimelineStore(
		model.Timeline{ID: "e5f6a7b8-0000-4000-8000-000000000001", Title: "BSc"},
		model.Timeline{ID: "e5f6a7b8-0000-4000-8000-000000000002", Title: "First job"},
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/timeline/getall", nil)
	rec := serve(registerTimelineRoutes(h), req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, true, got["success"])
	timelines, ok := got["timelines"].([]any)
	require.True(t, ok)
	assert.Len(t, timelines, 2)
}
