package helper

import (
	"errors"
	"sync"

	"sewaku_api/database"
	"sewaku_api/model"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type ProductFetch func(id uuid.UUID) (*model.Product, error)

// ProductResolver cache lookup produk per id: lookup yang sama (sedang jalan
// ataupun sudah selesai) tidak pernah di-fetch dua kali dalam satu siklus load.
// Dibuat baru di awal setiap reload, jadi eviction terjadi per siklus.
type ProductResolver struct {
	fetch    ProductFetch
	group    singleflight.Group
	mu       sync.Mutex
	resolved map[uuid.UUID]*model.Product
}

func NewProductResolver(fetch ProductFetch) *ProductResolver {
	if fetch == nil {
		fetch = fetchProductFromDB
	}
	return &ProductResolver{
		fetch:    fetch,
		resolved: make(map[uuid.UUID]*model.Product),
	}
}

// Resolve mengembalikan nil kalau produk tidak ditemukan atau fetch gagal;
// hasil gagal ikut di-cache supaya tidak diulang dalam siklus yang sama.
func (r *ProductResolver) Resolve(id uuid.UUID) *model.Product {
	if id == uuid.Nil {
		return nil
	}

	r.mu.Lock()
	if product, ok := r.resolved[id]; ok {
		r.mu.Unlock()
		return product
	}
	r.mu.Unlock()

	result, _, _ := r.group.Do(id.String(), func() (interface{}, error) {
		product, err := r.fetch(id)
		if err != nil {
			product = nil
		}
		r.mu.Lock()
		r.resolved[id] = product
		r.mu.Unlock()
		return product, nil
	})

	product, _ := result.(*model.Product)
	return product
}

func fetchProductFromDB(id uuid.UUID) (*model.Product, error) {
	if database.DB == nil {
		return nil, errors.New("database belum terhubung")
	}
	var product model.Product
	if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
