package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduno_backend/configs"
)

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadPostRejectsUnknownContentType(t *testing.T) {
	cfg := configs.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Post("/postupload", UploadPostHandler(nil, nil, cfg))

	body, contentType := multipartBody(t, map[string]string{
		"contentType": "video",
		"heading":     "clip",
	})
	req := httptest.NewRequest("POST", "/postupload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadPostMissingTokenUnauthorized(t *testing.T) {
	cfg := configs.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Post("/postupload", UploadPostHandler(nil, nil, cfg))

	body, contentType := multipartBody(t, map[string]string{
		"contentType": "text",
		"textContent": "hello",
	})
	req := httptest.NewRequest("POST", "/postupload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
