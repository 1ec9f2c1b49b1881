package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// cachedRepository is a read-through cache in front of another
// Repository. User records change rarely and every booking operation
// resolves at least one, so a short TTL takes most of the read load
// off postgres. Cache failures fall back to the inner repository.
type cachedRepository struct {
	client *redis.Client
	next   Repository
	ttl    time.Duration
}

// NewCachedRepository wraps next with a redis read-through cache.
func NewCachedRepository(client *redis.Client, next Repository, ttl time.Duration) Repository {
	return &cachedRepository{
		client: client,
		next:   next,
		ttl:    ttl,
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	key := cacheKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var u User
		if err := json.Unmarshal([]byte(val), &u); err == nil {
			return &u, nil
		}
		// Unreadable entry: drop it and fall through to the source.
		r.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Int64("user_id", id).Msg("user cache read failed")
	}

	u, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(u); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			log.Warn().Err(err).Int64("user_id", id).Msg("user cache write failed")
		}
	}

	return u, nil
}
