package router

import (
	"sewaku_api/handler"
	"sewaku_api/middleware"
	"sewaku_api/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", middleware.OptionalJWT(), handler.Logout)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	user := v1.Group("/user", logger.New())
	user.Post("/", validate.RegisterUser(), handler.RegisterUser)
	user.Get("/me", middleware.Protected(), handler.GetCurrentUser)
	user.Patch("/:userId/avatar", middleware.Protected(), validate.GetById("userId"), handler.UpdateAvatar)
	user.Post("/change-password", middleware.Protected(), validate.ChangePasswordUser(), handler.ChangePasswordUser)
	user.Get("/:userId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("userId"), handler.GetUserById)

	produk := v1.Group("/produk", logger.New())
	produk.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetProducts)
	produk.Get("/saya", middleware.Protected(), handler.GetMyProducts)
	produk.Get("/slug/:slug", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetProductBySlug)
	produk.Get("/:productId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("productId"), handler.GetProductById)
	produk.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	produk.Put("/:productId", middleware.Protected(), validate.GetById("productId"), validate.EditProduct(), handler.EditProduct)
	produk.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProducts)
	produk.Delete("/:productId", middleware.Protected(), validate.GetById("productId"), handler.DeleteProduct)

	// Resource legacy, masih dipakai klien lama
	motor := v1.Group("/produk_motor", logger.New())
	motor.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMotors)
	motor.Get("/:motorId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("motorId"), handler.GetMotorById)
	motor.Post("/", middleware.Protected(), handler.CreateMotor)
	motor.Put("/:motorId", middleware.Protected(), validate.GetById("motorId"), handler.EditMotor)
	motor.Delete("/:motorId", middleware.Protected(), validate.GetById("motorId"), handler.DeleteMotor)

	pesanan := v1.Group("/pesanan", logger.New())
	pesanan.Get("/saya", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyOrders)
	pesanan.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	pesanan.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderDetail)
	pesanan.Put("/:orderId", middleware.Protected(), validate.GetById("orderId"), validate.EditOrder(), handler.EditOrder)
	pesanan.Patch("/:orderId/status", middleware.Protected(), validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)

	ws := v1.Group("/ws")
	ws.Get("/pesanan/:userId", middleware.WebsocketAuth(), websocket.New(handler.OrderWebsocket))
}
