package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"sewaku_api/database"
	"sewaku_api/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId.String()
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId.String()
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// UserIdFromToken membaca claim userId dari token yang sudah diparse;
// uuid.Nil kalau token/claim tidak valid
func UserIdFromToken(token *jwt.Token) uuid.UUID {
	if token == nil {
		return uuid.Nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil
	}
	idStr, _ := claims["userId"].(string)
	userId, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil
	}
	return userId
}

// GetInfoUserFromToken membaca claim dari Locals("user"); user diambil dari cache
// session Redis dulu, kalau tidak ada baru query DB. Guest → claim kosong.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, model.User) {
	var emptyUser model.User
	guestClaim := model.TokenClaim{}

	u := c.Locals("user")
	if u == nil {
		return guestClaim, emptyUser
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return guestClaim, emptyUser
	}

	userId := UserIdFromToken(userToken)
	if userId == uuid.Nil {
		return guestClaim, emptyUser
	}

	claims, _ := userToken.Claims.(jwt.MapClaims)
	email, _ := claims["email"].(string)
	tokenClaim := model.TokenClaim{UserId: userId, Email: email}

	if cached := readSessionUser(userId); cached != nil {
		c.Locals("currentUser", cached)
		return tokenClaim, *cached
	}

	var user model.User
	db := database.DB
	if err := db.First(&user, "id = ?", userId).Error; err != nil {
		log.Printf("user tidak ditemukan (id=%s): %v", userId, err)
		return guestClaim, emptyUser
	}

	CacheSessionUser(user)
	c.Locals("currentUser", &user)

	return tokenClaim, user
}

// CacheSessionUser simpan record user login ke Redis (gagal hanya dilog)
func CacheSessionUser(user model.User) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return
	}
	ctx := context.Background()
	if err := database.Redis.Set(ctx, database.SessionUserKey(user.ID.String()), payload, database.TTLSessionUser).Err(); err != nil {
		log.Printf("gagal cache session user %s: %v", user.ID, err)
	}
}

func DropSessionUser(userId uuid.UUID) {
	if database.Redis == nil {
		return
	}
	ctx := context.Background()
	if err := database.Redis.Del(ctx, database.SessionUserKey(userId.String())).Err(); err != nil {
		log.Printf("gagal hapus session user %s: %v", userId, err)
	}
}

func readSessionUser(userId uuid.UUID) *model.User {
	if database.Redis == nil {
		return nil
	}
	ctx := context.Background()
	raw, err := database.Redis.Get(ctx, database.SessionUserKey(userId.String())).Bytes()
	if err != nil {
		return nil
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil
	}
	return &user
}
