package product

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"garage-sale/internal/domain"
	"github.com/go-redis/redis/v8"
)

const listCacheKey = "catalog:products"

type cachedRepo struct {
	next   Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// NewCached wraps a Repository with a Redis read-through cache for List.
// Cache failures fall back to the underlying repository. GetByIDs always
// hits the underlying store: checkout amounts must never come from a
// stale snapshot.
func NewCached(next Repository, rdb *redis.Client, ttl time.Duration, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &cachedRepo{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (r *cachedRepo) List(ctx context.Context) ([]domain.Product, error) {
	raw, err := r.rdb.Get(ctx, listCacheKey).Bytes()
	if err == nil {
		var cached []domain.Product
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached, nil
		}
		r.logger.Printf("product cache: dropping malformed entry key=%s", listCacheKey)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Printf("product cache: get key=%s error=%v", listCacheKey, err)
	}

	result, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := r.rdb.Set(ctx, listCacheKey, raw, r.ttl).Err(); err != nil {
			r.logger.Printf("product cache: set key=%s error=%v", listCacheKey, err)
		}
	}
	return result, nil
}

func (r *cachedRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	return r.next.GetByIDs(ctx, ids)
}

func (r *cachedRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	res, err := r.next.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := r.rdb.Del(ctx, listCacheKey).Err(); err != nil {
		r.logger.Printf("product cache: invalidate key=%s error=%v", listCacheKey, err)
	}
	return res, nil
}
