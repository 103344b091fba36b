package cart

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/heolazz/aerotech/cmd/redis"
	"github.com/heolazz/aerotech/model"
	goredis "github.com/redis/go-redis/v9"
)

// CartRepository stores one cart per browsing session. A missing key is an
// empty cart; carts expire with the configured TTL and are never shared
// across sessions.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, sessionID string, cart *model.Cart, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type repo struct {
}

func NewCartRepository() CartRepository {
	return &repo{}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *repo) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	client := redisclient.Get()
	if client == nil {
		return &model.Cart{}, nil
	}

	raw, err := client.Get(ctx, cartKey(sessionID)).Result()
	if err == goredis.Nil {
		return &model.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *repo) Save(ctx context.Context, sessionID string, cart *model.Cart, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return client.Set(ctx, cartKey(sessionID), raw, ttl).Err()
}

func (r *repo) Delete(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, cartKey(sessionID)).Err()
}
