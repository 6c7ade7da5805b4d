package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	DTO
	FullName string  `gorm:"not null" json:"full_name"`
	Phone    string  `gorm:"not null" json:"phone"`
	Email    string  `gorm:"unique;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Avatar   *string `json:"avatar"`
}

type Users []User

type RegisterUserInput struct {
	FullName string `validate:"required" json:"full_name"`
	Phone    string `validate:"required" json:"phone"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=6" json:"password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateAvatarInput struct {
	Avatar string `json:"avatar" validate:"required"`
}

type UserChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword  string `json:"repeatPassword" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type PasswordResetToken struct {
	DTO
	UserId    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}
