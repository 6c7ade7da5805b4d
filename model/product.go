package model

import (
	"github.com/google/uuid"
)

type Product struct {
	DTO
	Name         string    `gorm:"not null" json:"name"`
	Slug         string    `gorm:"uniqueIndex" json:"slug"`
	PricePerDay  int64     `gorm:"not null" json:"price_per_day"`
	Lokasi       string    `gorm:"not null" json:"lokasi"`
	Image        *string   `json:"image"`
	Transmission *string   `json:"transmission"` // Manual | Automatic
	Seats        *int      `json:"seats"`
	BagCapacity  *string   `json:"bag_capacity"`
	SubCategory  *string   `json:"sub_category"`
	PlateNumber  *string   `json:"plate_number"`
	Description  *string   `json:"description"`
	CategoryKey  string    `gorm:"not null;index" json:"category_key"`
	SellerID     uuid.UUID `gorm:"type:uuid;index" json:"seller_id"`
	Seller       *User     `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}

type Products []Product

type CreateProductInput struct {
	Name         string  `validate:"required" json:"name"`
	PricePerDay  int64   `validate:"required,gt=0" json:"price_per_day"`
	Lokasi       string  `validate:"required" json:"lokasi"`
	Image        *string `json:"image"` // URL atau data:<mime>;base64,...
	Transmission *string `json:"transmission"`
	Seats        *int    `json:"seats"`
	BagCapacity  *string `json:"bag_capacity"`
	SubCategory  *string `json:"sub_category"`
	PlateNumber  *string `json:"plate_number"`
	Description  *string `json:"description"`
	CategoryKey  string  `validate:"required" json:"category_key"`
}

type EditProductInput struct {
	Name         *string `json:"name"`
	PricePerDay  *int64  `json:"price_per_day"`
	Lokasi       *string `json:"lokasi"`
	Image        *string `json:"image"`
	Transmission *string `json:"transmission"`
	Seats        *int    `json:"seats"`
	BagCapacity  *string `json:"bag_capacity"`
	SubCategory  *string `json:"sub_category"`
	PlateNumber  *string `json:"plate_number"`
	Description  *string `json:"description"`
	CategoryKey  *string `json:"category_key"`
}

type FilterProduct struct {
	Pagination
	CategoryKey string `json:"categoryKey"`
	SubCategory string `json:"subCategory"`
	SearchKey   string `json:"searchKey"`
}
