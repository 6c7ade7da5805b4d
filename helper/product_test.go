package helper

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"sewaku_api/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductResolverFetchesOncePerId(t *testing.T) {
	var calls int32
	resolver := NewProductResolver(func(id uuid.UUID) (*model.Product, error) {
		atomic.AddInt32(&calls, 1)
		p := &model.Product{Name: "Avanza"}
		p.ID = id
		return p, nil
	})

	id := uuid.New()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := resolver.Resolve(id)
			assert.NotNil(t, p)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls)

	// panggilan berikutnya kena cache
	require.NotNil(t, resolver.Resolve(id))
	assert.EqualValues(t, 1, calls)
}

func TestProductResolverCachesFailure(t *testing.T) {
	var calls int32
	resolver := NewProductResolver(func(uuid.UUID) (*model.Product, error) {
		atomic.AddInt32(&calls, 1)
		return nil, errors.New("koneksi putus")
	})

	id := uuid.New()
	assert.Nil(t, resolver.Resolve(id))
	assert.Nil(t, resolver.Resolve(id))
	assert.EqualValues(t, 1, calls)
}

func TestProductResolverNilId(t *testing.T) {
	var calls int32
	resolver := NewProductResolver(func(uuid.UUID) (*model.Product, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})

	assert.Nil(t, resolver.Resolve(uuid.Nil))
	assert.EqualValues(t, 0, calls)
}

func TestProductResolverNewCycleRefetches(t *testing.T) {
	var calls int32
	fetch := func(id uuid.UUID) (*model.Product, error) {
		atomic.AddInt32(&calls, 1)
		p := &model.Product{Name: "Vario"}
		p.ID = id
		return p, nil
	}

	id := uuid.New()
	NewProductResolver(fetch).Resolve(id)
	NewProductResolver(fetch).Resolve(id)
	assert.EqualValues(t, 2, calls)
}
