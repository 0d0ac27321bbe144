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

type fakeMessageStore struct {
	messages map[string]model.Message
	created  []model.Message
}

func newFakeMessageStore(messages ...model.Message) *fakeMessageStore {
	s := &fakeMessageStore{messages: map[string]model.Message{}}
	for _, m := range messages {
		s.messages[m.ID] = m
	}
	return s
}

func (s *fakeMessageStore) Create(_ context.Context, m *model.Message) error {
	m.ID = "b2c3d4e5-0000-4000-8000-000000000001"
	s.messages[m.ID] = *m
	s.created = append(s.created, *m)
	return nil
}

func (s *fakeMessageStore) List(_ context.Context) ([]model.Message, error) {
	out := make([]model.Message, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m)
	}
	return out, nil
}

func (s *fakeMessageStore) Delete(_ context.Context, id string) error {
	if _, ok := s.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.messages, id)
	return nil
}

func registerMessageRoutes(h *MessageHandler) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		e.POST("/api/v1/message/send", h.SendMessage)
		e.GET("/api/v1/message/getall", h.GetAllMessages)
		e.DELETE("/api/v1/message/delete/:id", h.DeleteMessage)
	}
}

func TestSendMessage_Success(t *testing.T) {
	store := newFakeMessageStore()
	h := NewMessageHandler(store)

	payload := `{"senderName":"Jane","email":"jane@example.com","subject":"Hi","message":"Nice work"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/message/send", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(registerMessageRoutes(h), req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "Message Sent", got["message"])
	require.Len(t, store.created, 1)
	assert.Equal(t, "Jane", store.created[0].SenderName)
}

func TestSendMessage_MissingFields(t *testing.T) {
	store := newFakeMessageStore()
	h := NewMessageHandler(store)

	payload := `{"senderName":"Jane","email":"  ","subject":"Hi","message":"Nice work"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/message/send", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(registerMessageRoutes(h), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please fill in all fields!", decodeBody(t, rec)["message"])
	assert.Empty(t, store.created)
}

func TestDeleteMessage_Twice(t *testing.T) {
	existing := model.Message{ID: "b2c3d4e5-0000-4000-8000-000000000042"}
	h := NewMessageHandler(newFakeMessageStore(existing))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/message/delete/"+existing.ID, nil)
	rec := serve(registerMessageRoutes(h), req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Message Deleted", decodeBody(t, rec)["message"])

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/message/delete/"+existing.ID, nil)
	rec = serve(registerMessageRoutes(h), req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Message Already Deleted or Not Found", decodeBody(t, rec)["message"])
}

func TestDeleteMessage_InvalidID(t *testing.T) {
	h := NewMessageHandler(newFakeMessageStore())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/message/delete/42", nil)
	rec := serve(registerMessageRoutes(h), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Message ID", decodeBody(t, rec)["message"])
}

func TestGetAllMessages(t *testing.T) {
	h := NewMessageHandler(newFakeMessageStore(
		model.Message{ID: "b2c3d4e5-0000-4000-8000-000000000001", SenderName: "Jane"},
		model.Message{ID: "b2c3d4e5-0000-4000-8000-000000000002", SenderName: "John"},
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/message/getall", nil)
	rec := serve(registerMessageRoutes(h), req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}
