package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"sewaku_api/database"
	"sewaku_api/helper"
	"sewaku_api/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	orderClients = make(map[uuid.UUID]map[*websocket.Conn]bool)
	orderWsMutex sync.Mutex
)

// OrderWebsocket WS per user: push baris pesanan setiap ada perubahan status.
// Perubahan disebar lewat Redis pub/sub supaya tetap jalan saat multi-instance.
// Hanya user pemilik kanal yang boleh connect; identitas diambil dari token
// (middleware.WebsocketAuth), bukan dari path.
func OrderWebsocket(c *websocket.Conn) {
	userIdStr := c.Params("userId")
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		log.Printf("userId websocket tidak valid: %s", userIdStr)
		c.Close()
		return
	}

	token, _ := c.Locals("user").(*jwt.Token)
	if tokenUserId := helper.UserIdFromToken(token); tokenUserId != userId {
		log.Printf("websocket pesanan ditolak: token bukan milik user %s", userId)
		c.Close()
		return
	}

	defer func() {
		orderWsMutex.Lock()
		if orderClients[userId] != nil {
			delete(orderClients[userId], c)
			if len(orderClients[userId]) == 0 {
				delete(orderClients, userId)
			}
		}
		orderWsMutex.Unlock()
		c.Close()
	}()

	orderWsMutex.Lock()
	if orderClients[userId] == nil {
		orderClients[userId] = make(map[*websocket.Conn]bool)
	}
	orderClients[userId][c] = true
	orderWsMutex.Unlock()

	// Kirim daftar pesanan saat pertama connect
	if result, err := helper.SyncMyOrders(userId, helper.DefaultOrderSyncDeps(userId)); err == nil {
		c.WriteJSON(result.Rows)
	}

	// read pump: begitu client putus, loop pub/sub di bawah ikut berhenti
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if database.Redis == nil {
		<-done
		return
	}

	pubsub := database.Redis.Subscribe(context.Background(), database.OrderUserChannel(userId.String()))
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-done:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			payload := []byte(msg.Payload)

			orderWsMutex.Lock()
			for conn := range orderClients[userId] {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					conn.Close()
					delete(orderClients[userId], conn)
				}
			}
			orderWsMutex.Unlock()
		}
	}
}

// PublishOrderUpdate kirim baris pesanan terbaru ke kanal pembeli dan penjual.
// Gagal publish hanya dilog, tidak menggagalkan request.
func PublishOrderUpdate(order model.Order) {
	if database.Redis == nil {
		return
	}

	ctx := context.Background()
	for _, userId := range []uuid.UUID{order.BuyerID, order.SellerID} {
		view := helper.BuildOrderView(order, userId, nil)
		payload, err := json.Marshal(view)
		if err != nil {
			continue
		}
		if err := database.Redis.Publish(ctx, database.OrderUserChannel(userId.String()), payload).Err(); err != nil {
			log.Printf("gagal publish update pesanan ke user %s: %v", userId, err)
		}
	}
}
