package database

import (
	"log"

	"sewaku_api/constants"
	"sewaku_api/model"
	"sewaku_api/utils"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("sewaku123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	demo := model.User{
		FullName: "Demo SewaKu",
		Phone:    "081234567890",
		Email:    "demo@sewaku.id",
		Password: hashPassword,
	}
	if err := db.Where(model.User{Email: demo.Email}).FirstOrCreate(&demo).Error; err != nil {
		log.Println("failed to seed demo user:", err)
		return
	}

	products := []model.Product{
		{
			Name:         "Avanza",
			PricePerDay:  300000,
			Lokasi:       "Jakarta Selatan",
			Transmission: utils.StringPtr("Manual"),
			Seats:        utils.Ptr(7),
			SubCategory:  utils.StringPtr("MPV"),
			PlateNumber:  utils.StringPtr("B 1234 KJD"),
			CategoryKey:  constants.CATEGORY_MOBIL,
		},
		{
			Name:         "Vario 160",
			PricePerDay:  85000,
			Lokasi:       "Bandung",
			Transmission: utils.StringPtr("Automatic"),
			SubCategory:  utils.StringPtr("Matic"),
			CategoryKey:  constants.CATEGORY_MOTOR,
		},
		{
			Name:        "Excavator PC200",
			PricePerDay: 4500000,
			Lokasi:      "Bekasi",
			SubCategory: utils.StringPtr("Excavator"),
			CategoryKey: constants.CATEGORY_ALAT_KONSTRUKSI,
		},
		{
			Name:        "Bus Pariwisata 45 Seat",
			PricePerDay: 3500000,
			Lokasi:      "Yogyakarta",
			Seats:       utils.Ptr(45),
			SubCategory: utils.StringPtr("Pariwisata"),
			CategoryKey: constants.CATEGORY_BUS,
		},
		{
			Name:        "Pickup Grand Max",
			PricePerDay: 400000,
			Lokasi:      "Surabaya",
			SubCategory: utils.StringPtr("Pickup"),
			CategoryKey: constants.CATEGORY_LOGISTIK,
		},
		{
			Name:        "Food Truck Kuliner",
			PricePerDay: 1200000,
			Lokasi:      "Semarang",
			SubCategory: utils.StringPtr("Kuliner"),
			CategoryKey: constants.CATEGORY_LAINNYA,
		},
	}

	for _, product := range products {
		product.SellerID = demo.ID
		product.Slug = slug.Make(product.Name)
		if err := db.Where(model.Product{Slug: product.Slug}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", product.Name, "error:", err)
		}
	}
}
