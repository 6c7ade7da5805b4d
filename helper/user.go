package helper

import (
	"errors"

	"sewaku_api/database"
	"sewaku_api/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CheckByPhoneNumberUser(phoneNumber string, id *uuid.UUID) (bool, error) {
	db := database.DB
	var count int64
	if id == nil {
		if err := db.Model(&model.User{}).Where(model.User{Phone: phoneNumber}).Count(&count).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
	}
	if id != nil {
		if err := db.Model(&model.User{}).Where("phone = ? and id != ?", phoneNumber, *id).Count(&count).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
	}
	return count > 0, nil
}

func CheckByEmailUser(email string, id *uuid.UUID) (bool, error) {
	db := database.DB
	var count int64
	if id == nil {
		if err := db.Model(&model.User{}).Where(model.User{Email: email}).Count(&count).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
	}
	if id != nil {
		if err := db.Model(&model.User{}).Where("email = ? and id != ?", email, *id).Count(&count).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
	}
	return count > 0, nil
}
