package validate

import (
	"fmt"

	"sewaku_api/constants"
	"sewaku_api/model"
	"sewaku_api/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder memeriksa seluruh syarat sebelum ada satu pun panggilan tulis:
// productId harus uuid, tanggal harus bisa diparse dan urut, syarat disetujui,
// metode pembayaran harus yang aktif.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if !input.TermsAccepted {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": constants.ORDER_TERMS_REQUIRED,
				"field": "terms_accepted",
			})
		}

		if input.PaymentMethod != constants.PAYMENT_COD {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Metode pembayaran belum tersedia",
				"field": "payment_method",
			})
		}

		start, okStart := utils.ParseFlexibleDate(input.StartDate)
		end, okEnd := utils.ParseFlexibleDate(input.EndDate)
		if !okStart || !okEnd || end.Before(start) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": constants.ORDER_INVALID_DATES,
				"field": "start_date",
			})
		}

		if input.PhoneNumber != nil && *input.PhoneNumber != "" && !isValidPhoneID(*input.PhoneNumber) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Nomor HP tidak valid (mulai 08 atau +62)",
				"field": "phone_number",
			})
		}

		c.Locals("inputCreateOrder", input)

		return c.Next()
	}
}

// EditOrder hanya memeriksa bentuk; aturan "hanya pembeli, hanya pending"
// ada di handler karena butuh record dari DB
func EditOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditOrderInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.StartDate != nil || input.EndDate != nil {
			if input.StartDate == nil || input.EndDate == nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Tanggal sewa dan kembali harus diubah bersamaan",
					"field": "start_date",
				})
			}
			start, okStart := utils.ParseFlexibleDate(*input.StartDate)
			end, okEnd := utils.ParseFlexibleDate(*input.EndDate)
			if !okStart || !okEnd || end.Before(start) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": constants.ORDER_INVALID_DATES,
					"field": "start_date",
				})
			}
		}

		c.Locals("inputEditOrder", input)

		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if !model.ValidOrderStatus(input.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Status tidak dikenal",
				"field": "status",
			})
		}

		c.Locals("inputUpdateOrderStatus", input)

		return c.Next()
	}
}
