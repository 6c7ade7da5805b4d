package helper

import (
	"log"
	"time"

	"sewaku_api/database"
	"sewaku_api/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var orderScheduler *cron.Cron
var tokenScheduler gocron.Scheduler

func StartOrderScheduler() {
	orderScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Tiap 5 menit: pesanan pending yang tanggal mulainya sudah lewat dibatalkan
	_, err := orderScheduler.AddFunc("*/5 * * * *", cancelStalePendingOrders)
	if err != nil {
		log.Printf("gagal inisialisasi scheduler pesanan: %v", err)
		return
	}

	orderScheduler.Start()
	log.Println("Scheduler pesanan aktif (tiap 5 menit)")
}

func StopOrderScheduler() {
	if orderScheduler != nil {
		orderScheduler.Stop()
	}
}

func cancelStalePendingOrders() {
	loc := time.FixedZone("WIB", 7*3600)
	today := time.Now().In(loc).Truncate(24 * time.Hour)

	var orders model.Orders
	if err := database.DB.Where("status = ?", model.StatusPending).Find(&orders).Error; err != nil {
		log.Printf("gagal memindai pesanan pending: %v", err)
		return
	}

	for _, order := range orders {
		if order.StartDate.IsZero() || !order.StartDate.Time.Before(today) {
			continue
		}
		if err := model.CanTransitionOrder(order.Status, model.StatusCancelled, model.ActorSystem); err != nil {
			continue
		}
		now := time.Now()
		order.Status = model.StatusCancelled
		order.CancelledAt = &now
		if err := database.DB.Save(&order).Error; err != nil {
			log.Printf("gagal membatalkan pesanan kedaluwarsa %s: %v", order.PublicCode, err)
		} else {
			log.Printf("pesanan %s dibatalkan otomatis (tanggal mulai sudah lewat)", order.PublicCode)
		}
	}
}

func StartTokenPurgeScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("WIB", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	tokenScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(purgeExpiredResetTokens),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Scheduler purge reset token aktif (00:05 WIB)")
}

func StopTokenPurgeScheduler() {
	if tokenScheduler != nil {
		_ = tokenScheduler.Shutdown()
	}
}

func purgeExpiredResetTokens() {
	result := database.DB.Where("expires_at < ?", time.Now()).Delete(&model.PasswordResetToken{})
	if result.Error != nil {
		log.Printf("gagal hapus reset token kedaluwarsa: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("%d reset token kedaluwarsa dihapus", result.RowsAffected)
	}
}
