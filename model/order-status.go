package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCancelled OrderStatus = "cancelled"
	StatusCompleted OrderStatus = "completed"
)

// OrderFlow arah pesanan relatif terhadap user yang melihat, bukan field tersimpan
type OrderFlow string

const (
	FlowSellerToCustomer OrderFlow = "seller_to_customer"
	FlowCustomerToSeller OrderFlow = "customer_to_seller"
)

const (
	ActorBuyer  = "buyer"
	ActorSeller = "seller"
	ActorSystem = "system"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type orderTransition struct {
	From  OrderStatus
	To    OrderStatus
	Actor string
}

// Tabel transisi yang sah: pending → confirmed → completed, pending → cancelled.
// cancelled dan completed terminal.
var orderTransitions = []orderTransition{
	{From: StatusPending, To: StatusConfirmed, Actor: ActorSeller},
	{From: StatusPending, To: StatusCancelled, Actor: ActorBuyer},
	{From: StatusPending, To: StatusCancelled, Actor: ActorSystem},
	{From: StatusConfirmed, To: StatusCompleted, Actor: ActorBuyer},
}

var orderTransitionSet = func() map[orderTransition]bool {
	m := make(map[orderTransition]bool, len(orderTransitions))
	for _, t := range orderTransitions {
		m[t] = true
	}
	return m
}()

func CanTransitionOrder(from, to OrderStatus, actor string) error {
	if orderTransitionSet[orderTransition{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("transisi %s → %s tidak diizinkan untuk %s", from, to, actor)
}

// OrderActorFor menentukan peran user terhadap sebuah pesanan
func OrderActorFor(o Order, userId uuid.UUID) (string, error) {
	switch userId {
	case o.SellerID:
		return ActorSeller, nil
	case o.BuyerID:
		return ActorBuyer, nil
	}
	return "", errors.New("user bukan pembeli maupun penjual pesanan ini")
}

// FlowFor arah pesanan dari sudut pandang userId
func FlowFor(o Order, userId uuid.UUID) OrderFlow {
	if o.SellerID == userId {
		return FlowSellerToCustomer
	}
	return FlowCustomerToSeller
}
