package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

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

// GetProducts daftar produk publik dengan filter kategori, sub kategori, dan
// kata kunci pencarian; urutan hasil mengikuti urutan query (tidak di-sort ulang)
func GetProducts(c *fiber.Ctx) error {
	db := database.DB

	filter := model.FilterProduct{
		CategoryKey: c.Query("category_key"),
		SubCategory: c.Query("sub_category"),
		SearchKey:   c.Query("q"),
	}
	filter.Page = utils.Ptr(c.QueryInt("page", 1))
	filter.Limit = utils.Ptr(c.QueryInt("limit", 0))

	query := db.Model(&model.Product{})

	if filter.CategoryKey != "" {
		query = query.Where("category_key = ?", filter.CategoryKey)
	}
	if filter.SubCategory != "" && filter.SubCategory != constants.SUB_CATEGORY_ALL {
		query = query.Where("sub_category = ?", filter.SubCategory)
	}
	if filter.SearchKey != "" {
		key := "%" + strings.ToLower(filter.SearchKey) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(lokasi) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ? OR CAST(price_per_day AS TEXT) LIKE ?",
			key, key, key, key,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetProductById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var product model.Product
	if err := database.DB.Preload("Seller").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func GetProductBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")
	if slugParam == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	var product model.Product
	if err := database.DB.Preload("Seller").First(&product, "slug = ?", slugParam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// GetMyProducts produk milik user login, terbaru dulu
func GetMyProducts(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var products []model.Product
	if err := database.DB.Where("seller_id = ?", claim.UserId).Order("created_at DESC").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func resolveProductImage(c *fiber.Ctx, raw string) (string, error) {
	if file, ok := c.Locals("inputProductImageFile").(*multipart.FileHeader); ok && file != nil {
		return helper.UploadImageFile(c.Context(), file)
	}
	return helper.NormalizeImageValue(c.Context(), raw)
}

func CreateProduct(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	rawImage := ""
	if input.Image != nil {
		rawImage = *input.Image
	}
	imageUrl, err := resolveProductImage(c, rawImage)
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
		SubCategory:  input.SubCategory,
		PlateNumber:  input.PlateNumber,
		Description:  input.Description,
		CategoryKey:  input.CategoryKey,
		SellerID:     claim.UserId,
	}
	product.Image = utils.StringPtr(imageUrl)
	product.Slug = fmt.Sprintf("%s-%s", slug.Make(input.Name), uuid.NewString()[:8])

	if err := db.Create(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	db := database.DB

	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("inputEditProduct").(model.EditProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if product.SellerID != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = fmt.Sprintf("%s-%s", slug.Make(*input.Name), uuid.NewString()[:8])
	}
	if input.PricePerDay != nil {
		product.PricePerDay = *input.PricePerDay
	}
	if input.Lokasi != nil {
		product.Lokasi = *input.Lokasi
	}
	if input.Transmission != nil {
		product.Transmission = input.Transmission
	}
	if input.Seats != nil {
		product.Seats = input.Seats
	}
	if input.BagCapacity != nil {
		product.BagCapacity = input.BagCapacity
	}
	if input.SubCategory != nil {
		product.SubCategory = input.SubCategory
	}
	if input.PlateNumber != nil {
		product.PlateNumber = input.PlateNumber
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CategoryKey != nil {
		product.CategoryKey = *input.CategoryKey
	}
	if input.Image != nil {
		imageUrl, err := resolveProductImage(c, *input.Image)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gagal memproses gambar produk", err, "image")
		}
		product.Image = utils.StringPtr(imageUrl)
	} else if file, ok := c.Locals("inputProductImageFile").(*multipart.FileHeader); ok && file != nil {
		imageUrl, err := helper.UploadImageFile(c.Context(), file)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gagal memproses gambar produk", err, "image")
		}
		product.Image = utils.StringPtr(imageUrl)
	}

	if err := db.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// DeleteProducts hapus massal; hanya produk milik user yang ikut terhapus
func DeleteProducts(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	result := db.Where("id IN ? AND seller_id = ?", input.IDs, claim.UserId).Delete(&model.Product{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Produk berhasil dihapus",
		"deleted": result.RowsAffected,
	})
}

func DeleteProduct(c *fiber.Ctx) error {
	db := database.DB

	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if product.SellerID != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}

	if err := db.Delete(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Produk berhasil dihapus"})
}
