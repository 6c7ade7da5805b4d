package handler

import (
	"errors"
	"fmt"

	"sewaku_api/constants"
	"sewaku_api/database"
	"sewaku_api/helper"
	"sewaku_api/model"
	"sewaku_api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Endpoint legacy /produk_motor: membaca dan menulis tabel produk dengan
// category_key motor, tapi bentuk JSON-nya tetap bentuk lama (type_motor,
// created_at epoch millis).

func GetMotors(c *fiber.Ctx) error {
	var products []model.Product
	if err := database.DB.Where("category_key = ?", constants.CATEGORY_MOTOR).Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	wires := make([]model.MotorWire, 0, len(products))
	for _, p := range products {
		wires = append(wires, model.MotorWireFromProduct(p))
	}

	return c.Status(fiber.StatusOK).JSON(wires)
}

func GetMotorById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var product model.Product
	err := database.DB.Where("category_key = ?", constants.CATEGORY_MOTOR).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(model.MotorWireFromProduct(product))
}

// EditMotor update penuh gaya resource lama: seluruh field dikirim ulang
func EditMotor(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var input model.CreateMotorInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.Name == "" || input.Lokasi == "" || input.PricePerDay <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var product model.Product
	err := database.DB.Where("category_key = ?", constants.CATEGORY_MOTOR).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if product.SellerID != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}

	if input.Image != nil && *input.Image != "" {
		imageUrl, err := helper.NormalizeImageValue(c.Context(), *input.Image)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gagal memproses gambar produk", err, "image")
		}
		product.Image = utils.StringPtr(imageUrl)
	}

	product.Name = input.Name
	product.PricePerDay = input.PricePerDay
	product.Lokasi = input.Lokasi
	product.Transmission = input.Transmission
	product.Seats = input.Seats
	product.BagCapacity = input.BagCapacity
	product.SubCategory = input.TypeMotor
	product.PlateNumber = input.PlateNumber
	product.Description = input.Description

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return c.Status(fiber.StatusOK).JSON(model.MotorWireFromProduct(product))
}

func DeleteMotor(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var product model.Product
	err := database.DB.Where("category_key = ?", constants.CATEGORY_MOTOR).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if product.SellerID != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Produk berhasil dihapus"})
}

func CreateMotor(c *fiber.Ctx) error {
	var input model.CreateMotorInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.Name == "" || input.Lokasi == "" || input.PricePerDay <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	rawImage := ""
	if input.Image != nil {
		rawImage = *input.Image
	}
	imageUrl, err := helper.NormalizeImageValue(c.Context(), rawImage)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gagal memproses gambar produk", err, "image")
	}

	product := model.Product{
		Name:         input.Name,
		PricePerDay:  input.PricePerDay,
		Lokasi:       input.Lokasi,
		Transmission: input.Transmission,
		Seats:        input.Seats,
		BagCapacity:  input.BagCapacity,
		SubCategory:  input.TypeMotor,
		PlateNumber:  input.PlateNumber,
		Description:  input.Description,
		CategoryKey:  constants.CATEGORY_MOTOR,
		SellerID:     claim.UserId,
	}
	product.Image = utils.StringPtr(imageUrl)
	product.Slug = fmt.Sprintf("%s-%s", slug.Make(input.Name), uuid.NewString()[:8])

	if err := database.DB.Create(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return c.Status(fiber.StatusCreated).JSON(model.MotorWireFromProduct(product))
}
