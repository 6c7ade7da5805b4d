package model

import (
	"time"

	"sewaku_api/utils"

	"github.com/google/uuid"
)

type Order struct {
	DTO
	PublicCode     string           `gorm:"unique;size:20" json:"public_code"` // Kode publik, misal ORD-XXXXXX
	ProductID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	Product        *Product         `json:"product,omitempty"`
	BuyerID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"buyer_id"`
	Buyer          *User            `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	SellerID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"seller_id"`
	Seller         *User            `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Status         OrderStatus      `gorm:"not null;default:pending" json:"status"`
	StartDate      utils.CustomDate `gorm:"type:date" json:"start_date"`
	EndDate        utils.CustomDate `gorm:"type:date" json:"end_date"`
	ReturnTime     *string          `json:"return_time"` // jam pengembalian, "07:15"
	PickupLocation *string          `json:"pickup_location"`
	TotalPrice     int64            `json:"total_price"`
	PaymentMethod  string           `json:"payment_method"`
	KtpImageUrl    *string          `json:"ktp_image_url"`
	SimImageUrl    *string          `json:"sim_image_url"`
	PhoneNumber    *string          `json:"phone_number"`
	TermsAccepted  bool             `json:"terms_accepted"`
	ConfirmedAt    *time.Time       `json:"confirmed_at,omitempty"`
	CancelledAt    *time.Time       `json:"cancelled_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
}

type Orders []Order

type CreateOrderInput struct {
	ProductId      string  `validate:"required,uuid4" json:"product_id"`
	StartDate      string  `validate:"required" json:"start_date"` // dd/mm/yyyy atau yyyy-mm-dd
	EndDate        string  `validate:"required" json:"end_date"`
	ReturnTime     *string `json:"return_time"`
	PickupLocation *string `json:"pickup_location"`
	PaymentMethod  string  `validate:"required" json:"payment_method"`
	KtpImageUrl    *string `json:"ktp_image_url"` // URL atau data URI
	SimImageUrl    *string `json:"sim_image_url"`
	PhoneNumber    *string `json:"phone_number"`
	TermsAccepted  bool    `json:"terms_accepted"`
}

// EditOrderInput hanya berlaku selama status masih pending
type EditOrderInput struct {
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	ReturnTime     *string `json:"return_time"`
	PickupLocation *string `json:"pickup_location"`
}

type UpdateOrderStatusInput struct {
	Status OrderStatus `validate:"required" json:"status"`
}

// OrderView adalah baris siap-tampil untuk daftar "pesanan saya".
// Field image diratakan menjadi URL polos supaya bisa diserialisasi ke snapshot.
type OrderView struct {
	ID             uuid.UUID   `json:"id"`
	PublicCode     string      `json:"public_code"`
	Name           string      `json:"name"`
	Price          string      `json:"price"`
	Location       string      `json:"location"`
	ImageUrl       string      `json:"image_url"`
	Status         OrderStatus `json:"status"`
	Flow           OrderFlow   `json:"flow"`
	ProductID      uuid.UUID   `json:"product_id"`
	BuyerID        uuid.UUID   `json:"buyer_id"`
	SellerID       uuid.UUID   `json:"seller_id"`
	StartDate      string      `json:"start_date,omitempty"`
	EndDate        string      `json:"end_date,omitempty"`
	ReturnTime     *string     `json:"return_time,omitempty"`
	PickupLocation *string     `json:"pickup_location,omitempty"`
	TotalPrice     int64       `json:"total_price"`
	PaymentMethod  string      `json:"payment_method,omitempty"`
	PhoneNumber    *string     `json:"phone_number,omitempty"`
	TermsAccepted  bool        `json:"terms_accepted"`
	CreatedAt      int64       `json:"created_at"`
}
