package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/precios-api/internal/interfaces/http"
	"github.com/jhoicas/precios-api/pkg/logger"
)

func TestRequestLogger_RegistraUsuarioYEmail(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, testUserID))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "http", line["message"])
	assert.Equal(t, "/me", line["path"])
	assert.EqualValues(t, fiber.StatusNoContent, line["status"])
	assert.Equal(t, testUserID, line["user_id"])
	assert.Equal(t, testEmail, line["email"])
}

func TestRequestLogger_SinToken(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.EqualValues(t, fiber.StatusUnauthorized, line["status"])
	assert.Equal(t, "", line["email"])
}
