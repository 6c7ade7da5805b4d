package helper

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sewaku_api/model"
	"sewaku_api/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySnapshotStore struct {
	mu   sync.Mutex
	rows map[string][]model.OrderView
}

func newMemorySnapshotStore() *memorySnapshotStore {
	return &memorySnapshotStore{rows: make(map[string][]model.OrderView)}
}

func (s *memorySnapshotStore) Read(userId string) ([]model.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.rows[userId]
	if !ok {
		return nil, errors.New("snapshot kosong")
	}
	return rows, nil
}

func (s *memorySnapshotStore) Write(userId string, rows []model.OrderView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[userId] = rows
	return nil
}

func noRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

func fixedFetch(orders ...model.Order) OrderFetch {
	return func() (model.Orders, error) {
		return orders, nil
	}
}

func failingFetch() OrderFetch {
	return func() (model.Orders, error) {
		return nil, errors.New("backend mati")
	}
}

func makeOrder(buyerId, sellerId uuid.UUID, createdAt time.Time) model.Order {
	o := model.Order{
		PublicCode: "ORD-" + uuid.NewString()[:6],
		ProductID:  uuid.New(),
		BuyerID:    buyerId,
		SellerID:   sellerId,
		Status:     model.StatusPending,
		TotalPrice: 900000,
	}
	o.ID = uuid.New()
	o.CreatedAt = createdAt
	return o
}

func testDeps(buyer, seller OrderFetch) OrderSyncDeps {
	return OrderSyncDeps{
		FetchBuyer:  buyer,
		FetchSeller: seller,
		Resolver:    NewProductResolver(func(uuid.UUID) (*model.Product, error) { return nil, nil }),
		Snapshots:   newMemorySnapshotStore(),
		Retry:       noRetry(),
		Guard:       NewLoadGuard(),
	}
}

func TestSyncMyOrdersMergesBothSides(t *testing.T) {
	userId := uuid.New()
	other := uuid.New()

	asBuyer := makeOrder(userId, other, time.Now().Add(-time.Hour))
	asSeller := makeOrder(other, userId, time.Now())
	// pesanan yang muncul di dua sisi tidak boleh dobel
	shared := makeOrder(userId, other, time.Now().Add(-2*time.Hour))

	deps := testDeps(fixedFetch(asBuyer, shared), fixedFetch(asSeller, shared))
	result, err := SyncMyOrders(userId, deps)
	require.NoError(t, err)
	assert.False(t, result.Partial)
	assert.False(t, result.Stale)
	require.Len(t, result.Rows, 3)

	// terbaru dulu
	assert.Equal(t, asSeller.ID, result.Rows[0].ID)
	assert.Equal(t, asBuyer.ID, result.Rows[1].ID)
	assert.Equal(t, shared.ID, result.Rows[2].ID)

	// arah pesanan mengikuti peran user
	assert.Equal(t, model.FlowSellerToCustomer, result.Rows[0].Flow)
	assert.Equal(t, model.FlowCustomerToSeller, result.Rows[1].Flow)
}

func TestSyncMyOrdersDropsForeignOrders(t *testing.T) {
	userId := uuid.New()
	foreign := makeOrder(uuid.New(), uuid.New(), time.Now())

	deps := testDeps(fixedFetch(foreign), fixedFetch())
	result, err := SyncMyOrders(userId, deps)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestSyncMyOrdersPartialFailureKeepsOtherHalf(t *testing.T) {
	userId := uuid.New()
	asBuyer := makeOrder(userId, uuid.New(), time.Now())

	deps := testDeps(fixedFetch(asBuyer), failingFetch())
	result, err := SyncMyOrders(userId, deps)
	require.NoError(t, err)
	assert.True(t, result.Partial)
	assert.False(t, result.Stale)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, asBuyer.ID, result.Rows[0].ID)
}

func TestSyncMyOrdersBothFailWithoutSnapshot(t *testing.T) {
	deps := testDeps(failingFetch(), failingFetch())
	_, err := SyncMyOrders(uuid.New(), deps)
	assert.ErrorIs(t, err, ErrOrdersUnavailable)
}

func TestSyncMyOrdersBothFailServesSnapshot(t *testing.T) {
	userId := uuid.New()
	store := newMemorySnapshotStore()
	cached := []model.OrderView{{ID: uuid.New(), Name: "Avanza", Status: model.StatusPending}}
	require.NoError(t, store.Write(userId.String(), cached))

	deps := testDeps(failingFetch(), failingFetch())
	deps.Snapshots = store

	result, err := SyncMyOrders(userId, deps)
	require.NoError(t, err)
	assert.True(t, result.Stale)
	assert.Equal(t, cached, result.Rows)
}

func TestSyncMyOrdersWritesSnapshot(t *testing.T) {
	userId := uuid.New()
	asBuyer := makeOrder(userId, uuid.New(), time.Now())

	store := newMemorySnapshotStore()
	deps := testDeps(fixedFetch(asBuyer), fixedFetch())
	deps.Snapshots = store

	_, err := SyncMyOrders(userId, deps)
	require.NoError(t, err)

	rows, err := store.Read(userId.String())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, asBuyer.ID, rows[0].ID)
}

func TestSyncMyOrdersSupersededLoadSkipsSnapshot(t *testing.T) {
	userId := uuid.New()
	guard := NewLoadGuard()
	store := newMemorySnapshotStore()

	started := make(chan struct{})
	release := make(chan struct{})
	slowFetch := func() (model.Orders, error) {
		close(started)
		<-release
		return model.Orders{makeOrder(userId, uuid.New(), time.Now())}, nil
	}

	deps := testDeps(slowFetch, fixedFetch())
	deps.Snapshots = store
	deps.Guard = guard

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := SyncMyOrders(userId, deps)
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
	}()

	// load kedua mulai sebelum load pertama selesai
	<-started
	guard.Begin(userId.String())
	close(release)
	<-done

	// load pertama sudah tersusul, snapshot tidak boleh ditulis olehnya
	_, err := store.Read(userId.String())
	assert.Error(t, err)
}

func TestRetryPolicyRetriesUntilSuccess(t *testing.T) {
	var calls int32
	policy := RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(int) time.Duration { return 0 },
	}

	err := policy.Do(func() error {
		if atomic.AddInt32(&calls, 1) < 3 {
			return errors.New("belum")
		}
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls)
}

func TestRetryPolicyExhausted(t *testing.T) {
	var calls int32
	policy := RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(int) time.Duration { return 0 },
	}

	wantErr := errors.New("tetap gagal")
	err := policy.Do(func() error {
		atomic.AddInt32(&calls, 1)
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.EqualValues(t, 3, calls)
}

func TestOrderListRetryBackoffLinear(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, OrderListRetry.Backoff(1))
	assert.Equal(t, 1500*time.Millisecond, OrderListRetry.Backoff(3))
	assert.Equal(t, 3, OrderListRetry.MaxAttempts)
}

func TestBuildOrderViewFallbacks(t *testing.T) {
	userId := uuid.New()
	o := makeOrder(userId, uuid.New(), time.Now())

	// produk tidak bisa di-resolve: kolom tampilan turun ke placeholder
	view := BuildOrderView(o, userId, NewProductResolver(func(uuid.UUID) (*model.Product, error) { return nil, nil }))
	assert.Equal(t, "-", view.Name)
	assert.Equal(t, "-", view.Location)
	assert.Equal(t, FallbackOrderImage, view.ImageUrl)
	// harga turun ke total harga pesanan
	assert.Equal(t, utils.FormatRupiah(o.TotalPrice), view.Price)
}

func TestBuildOrderViewWithProduct(t *testing.T) {
	userId := uuid.New()
	o := makeOrder(userId, uuid.New(), time.Now())

	product := &model.Product{
		Name:        "Toyota Avanza",
		PricePerDay: 300000,
		Lokasi:      "Jakarta Selatan",
		Image:       utils.Ptr("https://example.com/avanza.jpg"),
	}
	product.ID = o.ProductID
	o.Product = product

	view := BuildOrderView(o, userId, nil)
	assert.Equal(t, "Toyota Avanza", view.Name)
	assert.Equal(t, "Jakarta Selatan", view.Location)
	assert.Equal(t, "https://example.com/avanza.jpg", view.ImageUrl)
	assert.Equal(t, "Rp300.000 / hari", view.Price)
	assert.Equal(t, model.FlowCustomerToSeller, view.Flow)
}

func TestRepriceOrderRecomputesTotal(t *testing.T) {
	userId := uuid.New()
	o := makeOrder(userId, uuid.New(), time.Now())
	product := &model.Product{Name: "Avanza", PricePerDay: 300000}
	product.ID = o.ProductID
	o.Product = product

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, RepriceOrder(&o, start, end))

	assert.Equal(t, "2024-03-01", o.StartDate.String())
	assert.Equal(t, "2024-03-03", o.EndDate.String())
	assert.EqualValues(t, 900000, o.TotalPrice)
}

func TestRepriceOrderRejectsWithoutProduct(t *testing.T) {
	userId := uuid.New()
	o := makeOrder(userId, uuid.New(), time.Now())
	o.Product = nil
	originalStart := o.StartDate
	originalTotal := o.TotalPrice

	err := RepriceOrder(&o, time.Now(), time.Now().Add(48*time.Hour))
	assert.ErrorIs(t, err, ErrOrderProductGone)

	// perubahan ditolak utuh: tanggal dan total tidak tersentuh
	assert.Equal(t, originalStart, o.StartDate)
	assert.Equal(t, originalTotal, o.TotalPrice)
}

func TestComputeTotalPrice(t *testing.T) {
	// 3 hari × Rp300.000
	assert.EqualValues(t, 900000, ComputeTotalPrice("01/03/2024", "03/03/2024", 300000))
	// tanggal tidak valid
	assert.EqualValues(t, 0, ComputeTotalPrice("03/03/2024", "01/03/2024", 300000))
	assert.EqualValues(t, 0, ComputeTotalPrice("", "03/03/2024", 300000))
}
