package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchHealth(t *testing.T, app *fiber.App) HealthResponse {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var res HealthResponse
	require.NoError(t, json.Unmarshal(body, &res))
	return res
}

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	NewHealthController().RegisterRoutes(app)

	res := fetchHealth(t, app)
	assert.Equal(t, "healthy", res.Status)
	assert.NotEmpty(t, res.Timestamp)
	assert.GreaterOrEqual(t, res.Uptime, 0.0)
}

func TestHealthUptimeNeverDecreases(t *testing.T) {
	app := fiber.New()
	NewHealthController().RegisterRoutes(app)

	first := fetchHealth(t, app)
	second := fetchHealth(t, app)
	assert.GreaterOrEqual(t, second.Uptime, first.Uptime)
}
