package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSApp(reached *bool) *fiber.App {
	app := fiber.New()
	fn := app.Group("/functions/v1", FunctionCORS())
	fn.Post("/analyze-video", func(c *fiber.Ctx) error {
		*reached = true
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func assertFunctionCORS(t *testing.T, header func(string) string) {
	t.Helper()
	assert.Equal(t, "*", header("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", header("Access-Control-Allow-Headers"))
	assert.Equal(t, "POST, OPTIONS", header("Access-Control-Allow-Methods"))
}

func TestFunctionCORSPreflight(t *testing.T) {
	reached := false
	app := newCORSApp(&reached)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodOptions, "/functions/v1/analyze-video", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assertFunctionCORS(t, resp.Header.Get)
	assert.Empty(t, readBody(t, resp))
	assert.False(t, reached)
}

func TestFunctionCORSOnRegularRequest(t *testing.T) {
	reached := false
	app := newCORSApp(&reached)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/functions/v1/analyze-video", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assertFunctionCORS(t, resp.Header.Get)
	assert.True(t, reached)
}
