package model

import (
	"sewaku_api/constants"

	"github.com/google/uuid"
)

// MotorWire adalah bentuk legacy resource /produk_motor: field sub_category
// dikirim sebagai type_motor, created_at sebagai epoch millis.
type MotorWire struct {
	ID           string  `json:"id"`
	CreatedAt    int64   `json:"created_at"`
	Name         string  `json:"name"`
	PricePerDay  int64   `json:"price_per_day"`
	Lokasi       string  `json:"lokasi"`
	Image        *string `json:"image,omitempty"`
	Transmission *string `json:"transmission,omitempty"`
	Seats        *int    `json:"seats,omitempty"`
	BagCapacity  *string `json:"bag_capacity,omitempty"`
	TypeMotor    *string `json:"type_motor,omitempty"`
	PlateNumber  *string `json:"plate_number,omitempty"`
	Description  *string `json:"description,omitempty"`
}

func MotorWireFromProduct(p Product) MotorWire {
	return MotorWire{
		ID:           p.ID.String(),
		CreatedAt:    p.CreatedAt.UnixMilli(),
		Name:         p.Name,
		PricePerDay:  p.PricePerDay,
		Lokasi:       p.Lokasi,
		Image:        p.Image,
		Transmission: p.Transmission,
		Seats:        p.Seats,
		BagCapacity:  p.BagCapacity,
		TypeMotor:    p.SubCategory,
		PlateNumber:  p.PlateNumber,
		Description:  p.Description,
	}
}

func (w MotorWire) ToProduct() Product {
	var p Product
	if id, err := uuid.Parse(w.ID); err == nil {
		p.ID = id
	}
	p.Name = w.Name
	p.PricePerDay = w.PricePerDay
	p.Lokasi = w.Lokasi
	p.Image = w.Image
	p.Transmission = w.Transmission
	p.Seats = w.Seats
	p.BagCapacity = w.BagCapacity
	p.SubCategory = w.TypeMotor
	p.PlateNumber = w.PlateNumber
	p.Description = w.Description
	p.CategoryKey = constants.CATEGORY_MOTOR
	return p
}

type CreateMotorInput struct {
	Name         string  `validate:"required" json:"name"`
	PricePerDay  int64   `validate:"required,gt=0" json:"price_per_day"`
	Lokasi       string  `validate:"required" json:"lokasi"`
	Image        *string `json:"image"`
	Transmission *string `json:"transmission"`
	Seats        *int    `json:"seats"`
	BagCapacity  *string `json:"bag_capacity"`
	TypeMotor    *string `json:"type_motor"`
	PlateNumber  *string `json:"plate_number"`
	Description  *string `json:"description"`
}
