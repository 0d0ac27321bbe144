// Package handler implements the HTTP handlers for the portfolio API.
// Each entity gets a handler struct bundling the stores it needs;
// handlers raise apperr values and let the centralized responder shape
// the wire envelope.
package handler

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aabiskar/portfolio-backend/internal/apperr"
	"github.com/aabiskar/portfolio-backend/internal/model"
)

// MediaStorage uploads and deletes remotely stored assets. Implemented
// by storage.S3Storage.
type MediaStorage interface {
	Upload(ctx context.Context, folder string, file *multipart.FileHeader) (model.Media, error)
	Delete(ctx context.Context, publicID string) error
}

// paramID validates the :id path parameter as a UUID. field names the
// identifier in the "Invalid <field>" message.
func paramID(c echo.Context, field string) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperr.InvalidField(field)
	}
	return id, nil
}

// currentUserID returns the authenticated user id stored by the auth
// middleware.
func currentUserID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", apperr.New("User Not Authenticated!", 401)
}

// formFile fetches a multipart file by field name; ok is false when the
// request carries no file under that name.
func formFile(c echo.Context, name string) (*multipart.FileHeader, bool) {
	fh, err := c.FormFile(name)
	if err != nil || fh == nil {
		return nil, false
	}
	return fh, true
}
