package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"sewaku_api/constants"
	"sewaku_api/database"
	"sewaku_api/helper"
	"sewaku_api/model"
	"sewaku_api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const publicCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newPublicCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = publicCodeAlphabet[int(b)%len(publicCodeAlphabet)]
	}
	return "ORD-" + string(buf), nil
}

func CreateOrder(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	productId, err := uuid.Parse(input.ProductId)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "productId")
	}

	var product model.Product
	if err := db.First(&product, "id = ?", productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if product.SellerID == claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tidak bisa menyewa produk sendiri", nil)
	}

	startDate, okStart := utils.ParseFlexibleDate(input.StartDate)
	endDate, okEnd := utils.ParseFlexibleDate(input.EndDate)
	if !okStart || !okEnd || endDate.Before(startDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_INVALID_DATES, nil)
	}

	// KTP dan SIM boleh URL atau data URI; data URI diunggah dulu
	ktpUrl, err := normalizeOptionalImage(c, input.KtpImageUrl)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gagal memproses foto KTP", err, "ktpImageUrl")
	}
	simUrl, err := normalizeOptionalImage(c, input.SimImageUrl)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gagal memproses foto SIM", err, "simImageUrl")
	}

	publicCode, err := newPublicCode()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order := model.Order{
		PublicCode:     publicCode,
		ProductID:      product.ID,
		BuyerID:        claim.UserId,
		SellerID:       product.SellerID,
		Status:         model.StatusPending,
		StartDate:      utils.CustomDate{Time: startDate},
		EndDate:        utils.CustomDate{Time: endDate},
		ReturnTime:     input.ReturnTime,
		PickupLocation: input.PickupLocation,
		TotalPrice:     helper.ComputeTotalPrice(input.StartDate, input.EndDate, product.PricePerDay),
		PaymentMethod:  input.PaymentMethod,
		KtpImageUrl:    ktpUrl,
		SimImageUrl:    simUrl,
		PhoneNumber:    input.PhoneNumber,
		TermsAccepted:  input.TermsAccepted,
	}

	if err := db.Create(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	order.Product = &product
	PublishOrderUpdate(order)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func normalizeOptionalImage(c *fiber.Ctx, value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	url, err := helper.NormalizeImageValue(c.Context(), *value)
	if err != nil {
		return nil, err
	}
	return utils.StringPtr(url), nil
}

// GetMyOrders daftar pesanan user dua arah (pembeli dan penjual).
// Guest mendapat daftar kosong, bukan error.
func GetMyOrders(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uuid.UUID)
	if userId == uuid.Nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"orders": []model.OrderView{},
		})
	}

	result, err := helper.SyncMyOrders(userId, helper.DefaultOrderSyncDeps(userId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ORDER_LOAD_FAILED, err)
	}

	payload := fiber.Map{
		"orders":  result.Rows,
		"partial": result.Partial,
		"stale":   result.Stale,
	}
	if result.Partial {
		payload["message"] = constants.ORDER_LOAD_PARTIAL
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payload)
}

func GetOrderDetail(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var order model.Order
	if err := database.DB.Preload("Product").Preload("Buyer").Preload("Seller").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if _, err := model.OrderActorFor(order, claim.UserId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}

	// QR berisi kode publik pesanan, dipakai saat serah terima kendaraan
	qrDataUri := ""
	if png, err := utils.GenerateQRCode(order.PublicCode, 256); err == nil {
		qrDataUri = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	}

	view := helper.BuildOrderView(order, claim.UserId, nil)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":   order,
		"view":    view,
		"qr_code": qrDataUri,
	})
}

// EditOrder hanya boleh oleh pembeli selama status masih pending
func EditOrder(c *fiber.Ctx) error {
	db := database.DB

	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("inputEditOrder").(model.EditOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var order model.Order
	if err := db.Preload("Product").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if order.BuyerID != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}
	if order.Status != model.StatusPending {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Pesanan yang sudah diproses tidak bisa diubah", nil)
	}

	if input.StartDate != nil && input.EndDate != nil {
		startDate, okStart := utils.ParseFlexibleDate(*input.StartDate)
		endDate, okEnd := utils.ParseFlexibleDate(*input.EndDate)
		if !okStart || !okEnd || endDate.Before(startDate) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_INVALID_DATES, nil)
		}
		if err := helper.RepriceOrder(&order, startDate, endDate); err != nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Produk pesanan sudah tidak tersedia", err)
		}
	}
	if input.ReturnTime != nil {
		order.ReturnTime = input.ReturnTime
	}
	if input.PickupLocation != nil {
		order.PickupLocation = input.PickupLocation
	}

	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	PublishOrderUpdate(order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus transisi status pesanan. Validasi transisi dan penulisan
// dilakukan dalam satu transaksi supaya dua aksi bersamaan tidak saling menimpa.
func UpdateOrderStatus(c *fiber.Ctx) error {
	db := database.DB

	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("inputUpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var order model.Order
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Product").First(&order, "id = ?", id).Error; err != nil {
			return err
		}

		actor, err := model.OrderActorFor(order, claim.UserId)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, constants.NOT_OWNER)
		}
		if err := model.CanTransitionOrder(order.Status, input.Status, actor); err != nil {
			return fiber.NewError(fiber.StatusConflict, constants.ORDER_INVALID_TRANSITION)
		}

		now := time.Now()
		order.Status = input.Status
		switch input.Status {
		case model.StatusConfirmed:
			order.ConfirmedAt = &now
		case model.StatusCancelled:
			order.CancelledAt = &now
		case model.StatusCompleted:
			order.CompletedAt = &now
		}

		return tx.Save(&order).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return utils.ErrorResponse(c, fe.Code, fe.Message, nil)
		}
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, txErr)
	}

	notifyOrderStatus(order)
	PublishOrderUpdate(order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

var orderStatusLabels = map[model.OrderStatus]string{
	model.StatusConfirmed: "dikonfirmasi penjual",
	model.StatusCancelled: "dibatalkan",
	model.StatusCompleted: "selesai",
}

func notifyOrderStatus(order model.Order) {
	var buyer model.User
	if err := database.DB.First(&buyer, "id = ?", order.BuyerID).Error; err != nil {
		return
	}

	productName := "-"
	totalPrice := utils.FormatRupiah(order.TotalPrice)
	if order.Product != nil {
		productName = order.Product.Name
	}

	utils.SendOrderStatusEmail(buyer.Email, utils.OrderStatusEmailData{
		OrderCode:   order.PublicCode,
		ProductName: productName,
		StartDate:   order.StartDate.String(),
		EndDate:     order.EndDate.String(),
		PickupLocation: func() string {
			if order.PickupLocation != nil {
				return *order.PickupLocation
			}
			return "-"
		}(),
		TotalPrice:  totalPrice,
		Status:      string(order.Status),
		StatusLabel: orderStatusLabels[order.Status],
	})
}
