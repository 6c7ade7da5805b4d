package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"
	"time"

	"sewaku_api/constants"
	"sewaku_api/database"
	"sewaku_api/helper"
	"sewaku_api/model"
	"sewaku_api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/jordan-wright/email"
)

func RegisterUser(c *fiber.Ctx) error {
	db := database.DB

	userInput, ok := c.Locals("RegisterUser").(model.RegisterUserInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil, "general")
	}

	isCheckPhone, err := helper.CheckByPhoneNumberUser(userInput.Phone, nil)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "phone")
	}
	if isCheckPhone {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Nomor HP sudah terdaftar", nil, "phone")
	}

	isCheckEmail, err := helper.CheckByEmailUser(userInput.Email, nil)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "email")
	}
	if isCheckEmail {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Email sudah terdaftar", nil, "email")
	}

	hash, err := helper.HashPassword(userInput.Password)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err, "password")
	}

	newUser := new(model.User)
	copier.Copy(&newUser, &userInput)
	newUser.Password = hash

	if err := db.Create(&newUser).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			if strings.Contains(err.Error(), "email") {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Email sudah terdaftar", nil, "email")
			}
			if strings.Contains(err.Error(), "phone") {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Nomor HP sudah terdaftar", nil, "phone")
			}
		}

		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err, "general")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Registrasi berhasil",
		"user":    newUser,
	})
}

func GetCurrentUser(c *fiber.Ctx) error {
	if user, ok := c.Locals("currentUser").(*model.User); ok && user != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, user)
	}

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func GetUserById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uuid.UUID)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var user model.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// UpdateAvatar menerima { "avatar": "<url atau data URI>" }; data URI diunggah
// dulu ke Cloudinary lalu disimpan sebagai URL polos
func UpdateAvatar(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	if targetId, ok := c.Locals("inputId").(uuid.UUID); ok && targetId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}

	var input model.UpdateAvatarInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.Avatar == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("avatar kosong"))
	}

	avatarUrl, err := helper.NormalizeImageValue(c.Context(), input.Avatar)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Gagal memproses avatar", err)
	}

	user.Avatar = &avatarUrl
	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	helper.CacheSessionUser(user)

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ChangePasswordUser(c *fiber.Ctx) error {
	db := database.DB
	changePasswordInput, ok := c.Locals("inputChangePasswordUser").(model.UserChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	if !helper.CheckPasswordHash(changePasswordInput.CurrentPassword, user.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, errors.New("currentPassword invalid"), "currentPassword")
	}
	newPasswordHash, err := helper.HashPassword(changePasswordInput.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}
	user.Password = newPasswordHash
	db.Save(&user)

	helper.CacheSessionUser(user)

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB
	emailInput, ok := c.Locals("EmailForgotPassword").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	user, err := helper.GetUserByEmail(emailInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Email tidak terdaftar"})
	}

	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := model.PasswordResetToken{
		UserId:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan token"})
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_BASE_URL"), token)
	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{emailInput.Email}
	e.Subject = "Reset Password SewaKu"
	e.Text = []byte(fmt.Sprintf("Klik tautan berikut untuk reset password: %s", resetLink))
	smtpAddr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	err = e.Send(smtpAddr, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengirim email"})
	}

	return c.JSON(fiber.Map{"message": "Tautan reset sudah dikirim ke email"})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	resetInput, ok := c.Locals("ResetPassword").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", resetInput.Token, time.Now()).First(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token tidak valid atau kedaluwarsa"})
	}

	var user model.User
	if err := db.First(&user, "id = ?", resetToken.UserId).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	hash, err := helper.HashPassword(resetInput.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui password"})
	}
	db.Delete(&resetToken)

	return c.JSON(fiber.Map{"message": "Password berhasil direset"})
}
