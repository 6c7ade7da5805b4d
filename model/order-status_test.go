package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionOrder(t *testing.T) {
	// transisi yang sah
	assert.NoError(t, CanTransitionOrder(StatusPending, StatusConfirmed, ActorSeller))
	assert.NoError(t, CanTransitionOrder(StatusPending, StatusCancelled, ActorBuyer))
	assert.NoError(t, CanTransitionOrder(StatusPending, StatusCancelled, ActorSystem))
	assert.NoError(t, CanTransitionOrder(StatusConfirmed, StatusCompleted, ActorBuyer))

	// aktor salah
	assert.Error(t, CanTransitionOrder(StatusPending, StatusConfirmed, ActorBuyer))
	assert.Error(t, CanTransitionOrder(StatusPending, StatusCancelled, ActorSeller))
	assert.Error(t, CanTransitionOrder(StatusConfirmed, StatusCompleted, ActorSeller))
	assert.Error(t, CanTransitionOrder(StatusConfirmed, StatusCompleted, ActorSystem))

	// status terminal tidak bisa keluar lagi
	for _, terminal := range []OrderStatus{StatusCancelled, StatusCompleted} {
		for _, to := range []OrderStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
			for _, actor := range []string{ActorBuyer, ActorSeller, ActorSystem} {
				assert.Error(t, CanTransitionOrder(terminal, to, actor), "%s → %s oleh %s", terminal, to, actor)
			}
		}
	}

	// konfirmasi ganda ditolak
	assert.Error(t, CanTransitionOrder(StatusConfirmed, StatusConfirmed, ActorSeller))

	// pesanan confirmed tidak bisa dibatalkan lagi
	assert.Error(t, CanTransitionOrder(StatusConfirmed, StatusCancelled, ActorBuyer))
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(StatusPending))
	assert.True(t, ValidOrderStatus(StatusCompleted))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("shipped"))
}

func TestOrderActorFor(t *testing.T) {
	buyerId := uuid.New()
	sellerId := uuid.New()
	order := Order{BuyerID: buyerId, SellerID: sellerId}

	actor, err := OrderActorFor(order, buyerId)
	require.NoError(t, err)
	assert.Equal(t, ActorBuyer, actor)

	actor, err = OrderActorFor(order, sellerId)
	require.NoError(t, err)
	assert.Equal(t, ActorSeller, actor)

	_, err = OrderActorFor(order, uuid.New())
	assert.Error(t, err)
}

func TestFlowFor(t *testing.T) {
	buyerId := uuid.New()
	sellerId := uuid.New()
	order := Order{BuyerID: buyerId, SellerID: sellerId}

	assert.Equal(t, FlowCustomerToSeller, FlowFor(order, buyerId))
	assert.Equal(t, FlowSellerToCustomer, FlowFor(order, sellerId))
}
