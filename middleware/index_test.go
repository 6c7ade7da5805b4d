package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sewaku_api/helper"
	"sewaku_api/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/ws/pesanan/:userId", WebsocketAuth(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestWebsocketAuthRejectsWithoutToken(t *testing.T) {
	app := wsTestApp()

	req := httptest.NewRequest("GET", "/ws/pesanan/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebsocketAuthRejectsBadToken(t *testing.T) {
	app := wsTestApp()

	req := httptest.NewRequest("GET", "/ws/pesanan/"+uuid.NewString()+"?token=bukan-jwt", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebsocketAuthAcceptsQueryToken(t *testing.T) {
	app := wsTestApp()

	token, err := helper.GenerateAccessToken(model.TokenClaim{UserId: uuid.New(), Email: "budi@sewaku.id"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/ws/pesanan/"+uuid.NewString()+"?token="+token, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestWebsocketAuthAcceptsCookieToken(t *testing.T) {
	app := wsTestApp()

	token, err := helper.GenerateAccessToken(model.TokenClaim{UserId: uuid.New(), Email: "budi@sewaku.id"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/ws/pesanan/"+uuid.NewString(), nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
