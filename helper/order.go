package helper

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"sewaku_api/database"
	"sewaku_api/model"
	"sewaku_api/utils"

	"github.com/google/uuid"
)

// Gambar pengganti saat produk tidak punya foto
const FallbackOrderImage = "https://res.cloudinary.com/sewaku/image/upload/v1/sewaku/placeholder-kendaraan.jpg"

var ErrOrdersUnavailable = errors.New("semua sumber pesanan gagal dimuat")

// RetryPolicy kebijakan retry yang bisa dipakai ulang per call site
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// OrderListRetry: 3 percobaan, backoff linear attempt × 500ms
var OrderListRetry = RetryPolicy{
	MaxAttempts: 3,
	Backoff: func(attempt int) time.Duration {
		return time.Duration(attempt) * 500 * time.Millisecond
	},
}

func (p RetryPolicy) Do(fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt < attempts && p.Backoff != nil {
			time.Sleep(p.Backoff(attempt))
		}
	}
	return err
}

// LoadGuard counter naik monoton per key. Load yang sudah tersusul load baru
// (gen != Current) tidak boleh menimpa snapshot hasil load yang lebih baru.
type LoadGuard struct {
	mu  sync.Mutex
	gen map[string]uint64
}

func NewLoadGuard() *LoadGuard {
	return &LoadGuard{gen: make(map[string]uint64)}
}

func (g *LoadGuard) Begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen[key]++
	return g.gen[key]
}

func (g *LoadGuard) Current(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen[key]
}

var orderLoadGuard = NewLoadGuard()

type OrderFetch func() (model.Orders, error)

// OrderSnapshotStore menyimpan hasil merge terakhir per user (stale-while-revalidate)
type OrderSnapshotStore interface {
	Read(userId string) ([]model.OrderView, error)
	Write(userId string, rows []model.OrderView) error
}

type redisSnapshotStore struct{}

func (redisSnapshotStore) Read(userId string) ([]model.OrderView, error) {
	if database.Redis == nil {
		return nil, errors.New("redis belum terhubung")
	}
	raw, err := database.Redis.Get(context.Background(), database.OrderSnapshotKey(userId)).Bytes()
	if err != nil {
		return nil, err
	}
	var rows []model.OrderView
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (redisSnapshotStore) Write(userId string, rows []model.OrderView) error {
	if database.Redis == nil {
		return errors.New("redis belum terhubung")
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return database.Redis.Set(context.Background(), database.OrderSnapshotKey(userId), payload, database.TTLOrderSnapshot).Err()
}

type OrderSyncDeps struct {
	FetchBuyer  OrderFetch
	FetchSeller OrderFetch
	Resolver    *ProductResolver
	Snapshots   OrderSnapshotStore
	Retry       RetryPolicy
	Guard       *LoadGuard
}

type OrderSyncResult struct {
	Rows    []model.OrderView
	Partial bool // salah satu sisi gagal, data yang ada tetap dipakai
	Stale   bool // keduanya gagal, baris berasal dari snapshot terakhir
}

// DefaultOrderSyncDeps wiring produksi: fetch dari DB, snapshot di Redis
func DefaultOrderSyncDeps(userId uuid.UUID) OrderSyncDeps {
	return OrderSyncDeps{
		FetchBuyer:  fetchOrdersBy("buyer_id", userId),
		FetchSeller: fetchOrdersBy("seller_id", userId),
		Resolver:    NewProductResolver(nil),
		Snapshots:   redisSnapshotStore{},
		Retry:       OrderListRetry,
		Guard:       orderLoadGuard,
	}
}

func fetchOrdersBy(column string, userId uuid.UUID) OrderFetch {
	return func() (model.Orders, error) {
		var rows model.Orders
		err := database.DB.Preload("Product").Where(column+" = ?", userId).Find(&rows).Error
		return rows, err
	}
}

// SyncMyOrders memuat "pesanan saya" dua arah (sebagai pembeli dan penjual)
// sesuai kontrak: retry per sisi, merge by id, scope ke user, resolve produk
// lewat single-flight, lalu persist snapshot kalau load ini belum tersusul.
func SyncMyOrders(userId uuid.UUID, deps OrderSyncDeps) (OrderSyncResult, error) {
	key := userId.String()
	guard := deps.Guard
	if guard == nil {
		guard = orderLoadGuard
	}
	gen := guard.Begin(key)

	type half struct {
		orders model.Orders
		err    error
	}
	var buyer, seller half

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		buyer.err = deps.Retry.Do(func() error {
			rows, err := deps.FetchBuyer()
			if err != nil {
				return err
			}
			buyer.orders = rows
			return nil
		})
	}()
	go func() {
		defer wg.Done()
		seller.err = deps.Retry.Do(func() error {
			rows, err := deps.FetchSeller()
			if err != nil {
				return err
			}
			seller.orders = rows
			return nil
		})
	}()
	wg.Wait()

	if buyer.err != nil && seller.err != nil {
		log.Printf("gagal memuat pesanan user %s: buyer=%v seller=%v", key, buyer.err, seller.err)
		if deps.Snapshots != nil {
			if cached, err := deps.Snapshots.Read(key); err == nil && len(cached) > 0 {
				return OrderSyncResult{Rows: cached, Stale: true}, nil
			}
		}
		return OrderSyncResult{}, ErrOrdersUnavailable
	}

	merged := make(map[uuid.UUID]model.Order)
	for _, o := range buyer.orders {
		merged[o.ID] = o
	}
	for _, o := range seller.orders {
		merged[o.ID] = o
	}

	rows := make([]model.OrderView, 0, len(merged))
	for _, o := range merged {
		// jaga-jaga kalau backend mengembalikan pesanan orang lain
		if o.BuyerID != userId && o.SellerID != userId {
			continue
		}
		rows = append(rows, BuildOrderView(o, userId, deps.Resolver))
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt > rows[j].CreatedAt
	})

	if deps.Snapshots != nil && gen == guard.Current(key) {
		if err := deps.Snapshots.Write(key, rows); err != nil {
			log.Printf("gagal simpan snapshot pesanan user %s: %v", key, err)
		}
	}

	return OrderSyncResult{
		Rows:    rows,
		Partial: buyer.err != nil || seller.err != nil,
	}, nil
}

// BuildOrderView meratakan order + snapshot produk menjadi baris siap-tampil
// dari sudut pandang userId. Produk yang hilang di-resolve lewat resolver;
// kalau tetap gagal, kolom tampilan turun ke placeholder.
func BuildOrderView(o model.Order, userId uuid.UUID, resolver *ProductResolver) model.OrderView {
	product := o.Product
	if (product == nil || product.Name == "") && resolver != nil {
		if resolved := resolver.Resolve(o.ProductID); resolved != nil {
			product = resolved
		}
	}

	name := "-"
	lokasi := "-"
	price := "-"
	imageUrl := FallbackOrderImage
	if product != nil {
		if product.Name != "" {
			name = product.Name
		}
		if product.Lokasi != "" {
			lokasi = product.Lokasi
		}
		if product.PricePerDay > 0 {
			price = utils.FormatDailyRupiah(product.PricePerDay)
		}
		if product.Image != nil && *product.Image != "" {
			imageUrl = *product.Image
		}
	}
	if price == "-" && o.TotalPrice > 0 {
		price = utils.FormatRupiah(o.TotalPrice)
	}

	return model.OrderView{
		ID:             o.ID,
		PublicCode:     o.PublicCode,
		Name:           name,
		Price:          price,
		Location:       lokasi,
		ImageUrl:       imageUrl,
		Status:         o.Status,
		Flow:           model.FlowFor(o, userId),
		ProductID:      o.ProductID,
		BuyerID:        o.BuyerID,
		SellerID:       o.SellerID,
		StartDate:      o.StartDate.String(),
		EndDate:        o.EndDate.String(),
		ReturnTime:     o.ReturnTime,
		PickupLocation: o.PickupLocation,
		TotalPrice:     o.TotalPrice,
		PaymentMethod:  o.PaymentMethod,
		PhoneNumber:    o.PhoneNumber,
		TermsAccepted:  o.TermsAccepted,
		CreatedAt:      o.CreatedAt.UnixMilli(),
	}
}

// ComputeTotalPrice = totalHari × harga per hari; 0 kalau tanggal tidak valid
func ComputeTotalPrice(startDate, endDate string, pricePerDay int64) int64 {
	return int64(utils.TotalHari(startDate, endDate)) * pricePerDay
}

var ErrOrderProductGone = errors.New("produk pesanan sudah tidak tersedia")

// RepriceOrder ganti tanggal sewa sekaligus hitung ulang total. Tanggal tidak
// boleh berubah tanpa total ikut berubah: kalau produknya sudah hilang (harga
// per hari tidak diketahui) perubahan ditolak utuh.
func RepriceOrder(o *model.Order, start, end time.Time) error {
	if o.Product == nil {
		return ErrOrderProductGone
	}
	o.StartDate = utils.CustomDate{Time: start}
	o.EndDate = utils.CustomDate{Time: end}
	o.TotalPrice = int64(utils.TotalHariFromTimes(start, end)) * o.Product.PricePerDay
	return nil
}
