package cache

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/Apple-More/order-service/internal/entity"
	"github.com/Apple-More/order-service/internal/usecase"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (r *RedisCache) SetStatus(ctx context.Context, orderID, status string) error {
	return r.rdb.Set(ctx, "order:status:"+orderID, status, r.ttl).Err()
}

func (r *RedisCache) SetCustomer(ctx context.Context, c *domain.Customer) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, "customer:"+c.ID, raw, r.ttl).Err()
}

func (r *RedisCache) GetCustomer(ctx context.Context, id string) (*domain.Customer, bool, error) {
	raw, err := r.rdb.Get(ctx, "customer:"+id).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var c domain.Customer
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

var _ usecase.OrderCache = (*RedisCache)(nil)
