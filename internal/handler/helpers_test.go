package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/aabiskar/portfolio-backend/internal/model"
)

// serve runs a single request through a fresh Echo instance with the
// centralized error responder installed, so tests observe the exact wire
// envelope a client would see.
func serve(register func(e *echo.Echo), req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = JSONErrorHandler
	register(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// multipartBody builds a multipart form with the given text fields and
// files (field name -> file name). File contents are a fixed blob.
func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, name := range files {
		fw, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("binary-asset"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// fakeMedia records uploads and deletions and can be told to fail.
type fakeMedia struct {
	uploads   []string // folders uploaded to, in order
	deletes   []string // public ids deleted, in order
	uploadErr error
	deleteErr error
	failAfter int // fail uploads once this many have succeeded (0 = use uploadErr directly)
}

func (f *fakeMedia) Upload(_ context.Context, folder string, file *multipart.FileHeader) (model.Media, error) {
	if f.uploadErr != nil && len(f.uploads) >= f.failAfter {
		return model.Media{}, f.uploadErr
	}
	f.uploads = append(f.uploads, folder)
	id := folder + "/" + file.Filename
	return model.Media{PublicID: id, URL: "https://cdn.test/" + id}, nil
}

func (f *fakeMedia) Delete(_ context.Context, publicID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, publicID)
	return nil
}
