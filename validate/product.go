package validate

import (
	"fmt"
	"strconv"
	"strings"

	"sewaku_api/constants"
	"sewaku_api/model"
	"sewaku_api/utils"

	"github.com/gofiber/fiber/v2"
)

func isValidCategoryKey(key string) bool {
	for _, k := range constants.CategoryKeys {
		if k == key {
			return true
		}
	}
	return false
}

func isValidSubCategory(categoryKey string, sub *string) bool {
	if sub == nil || *sub == "" {
		return true
	}
	for _, s := range constants.SubCategoryOptions[categoryKey] {
		if strings.EqualFold(s, *sub) {
			return true
		}
	}
	return false
}

// CreateProduct menerima dua bentuk body (kompatibilitas API lama): multipart
// form-data dengan file part "image", atau JSON dengan image berupa URL /
// data URI. Bentuk multipart di-parse manual ke input yang sama.
func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput

		if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
			parsed, err := parseProductForm(c)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Invalid input %s", err.Error()),
				})
			}
			input = parsed
			if file, err := c.FormFile("image"); err == nil && file != nil {
				c.Locals("inputProductImageFile", file)
			}
		} else if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if !isValidCategoryKey(input.CategoryKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Kategori tidak dikenal",
				"field": "category_key",
			})
		}
		if !isValidSubCategory(input.CategoryKey, input.SubCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Sub kategori tidak sesuai kategori",
				"field": "sub_category",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreateProduct", input)

		return c.Next()
	}
}

// EditProduct dipasang setelah GetById: parse body edit (JSON atau multipart)
func EditProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditProductInput

		if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
			created, err := parseProductForm(c)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Invalid input %s", err.Error()),
				})
			}
			input = model.EditProductInput{
				Name:         utils.StringPtr(created.Name),
				Lokasi:       utils.StringPtr(created.Lokasi),
				Image:        created.Image,
				Transmission: created.Transmission,
				Seats:        created.Seats,
				BagCapacity:  created.BagCapacity,
				SubCategory:  created.SubCategory,
				PlateNumber:  created.PlateNumber,
				Description:  created.Description,
			}
			if created.PricePerDay > 0 {
				input.PricePerDay = &created.PricePerDay
			}
			if created.CategoryKey != "" {
				input.CategoryKey = &created.CategoryKey
			}
			if file, err := c.FormFile("image"); err == nil && file != nil {
				c.Locals("inputProductImageFile", file)
			}
		} else if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.CategoryKey != nil && !isValidCategoryKey(*input.CategoryKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Kategori tidak dikenal",
				"field": "category_key",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputEditProduct", input)

		return c.Next()
	}
}

func parseProductForm(c *fiber.Ctx) (model.CreateProductInput, error) {
	var input model.CreateProductInput

	input.Name = c.FormValue("name")
	input.Lokasi = c.FormValue("lokasi")
	input.CategoryKey = c.FormValue("category_key")

	if v := c.FormValue("price_per_day"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return input, fmt.Errorf("price_per_day bukan angka: %s", v)
		}
		input.PricePerDay = price
	}
	if v := c.FormValue("seats"); v != "" {
		seats, err := strconv.Atoi(v)
		if err != nil {
			return input, fmt.Errorf("seats bukan angka: %s", v)
		}
		input.Seats = &seats
	}

	input.Transmission = utils.StringPtr(c.FormValue("transmission"))
	input.BagCapacity = utils.StringPtr(c.FormValue("bag_capacity"))
	input.PlateNumber = utils.StringPtr(c.FormValue("plate_number"))
	input.Description = utils.StringPtr(c.FormValue("description"))

	// resource motor lama memakai field type_motor untuk sub kategori
	sub := c.FormValue("sub_category")
	if sub == "" {
		sub = c.FormValue("type_motor")
	}
	input.SubCategory = utils.StringPtr(sub)

	return input, nil
}
