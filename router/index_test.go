package router

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func hasRoute(app *fiber.App, method, path string) bool {
	for _, route := range app.GetRoutes() {
		if route.Method == method && route.Path == path {
			return true
		}
	}
	return false
}

func TestSetupRoutes(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app)

	// resource motor lama harus punya bentuk CRUD penuh
	assert.True(t, hasRoute(app, "GET", "/api/v1/produk_motor/"))
	assert.True(t, hasRoute(app, "GET", "/api/v1/produk_motor/:motorId"))
	assert.True(t, hasRoute(app, "POST", "/api/v1/produk_motor/"))
	assert.True(t, hasRoute(app, "PUT", "/api/v1/produk_motor/:motorId"))
	assert.True(t, hasRoute(app, "DELETE", "/api/v1/produk_motor/:motorId"))

	assert.True(t, hasRoute(app, "GET", "/api/v1/pesanan/saya"))
	assert.True(t, hasRoute(app, "PATCH", "/api/v1/pesanan/:orderId/status"))
	assert.True(t, hasRoute(app, "GET", "/api/v1/ws/pesanan/:userId"))
	assert.True(t, hasRoute(app, "POST", "/api/v1/user/"))
	assert.True(t, hasRoute(app, "PATCH", "/api/v1/user/:userId/avatar"))
}
