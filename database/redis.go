package database

import (
	"fmt"
	"time"

	"sewaku_api/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const (
	// Snapshot terakhir daftar pesanan per user: orders:snapshot:{userId}
	KeyOrderSnapshot = "orders:snapshot:%s"

	// Cache session user login: session:user:{userId}
	KeySessionUser = "session:user:%s"

	// Channel pub/sub update pesanan per user: orders:user:{userId}
	ChannelOrderUser = "orders:user:%s"
)

var (
	TTLOrderSnapshot = 7 * 24 * time.Hour
	TTLSessionUser   = 24 * time.Hour
)

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})
	fmt.Println("Redis client ready")
}

func OrderSnapshotKey(userId string) string {
	return fmt.Sprintf(KeyOrderSnapshot, userId)
}

func SessionUserKey(userId string) string {
	return fmt.Sprintf(KeySessionUser, userId)
}

func OrderUserChannel(userId string) string {
	return fmt.Sprintf(ChannelOrderUser, userId)
}
