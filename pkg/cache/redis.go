// pkg/cache/redis.go
package cache

import (
    "context"
    "crypto/sha256"
    "encoding/hex"
    "encoding/json"
    "fmt"
    "time"

    "github.com/go-redis/redis/v8"
    "github.com/google/uuid"

    "gne-trainer/internal/models"
)

// roundTTL bounds how long an abandoned round lingers.
const roundTTL = 24 * time.Hour

type RedisCache struct {
    client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
    client := redis.NewClient(&redis.Options{
        Addr: addr,
    })
    return &RedisCache{client: client}
}

func (c *RedisCache) Ping(ctx context.Context) error {
    return c.client.Ping(ctx).Err()
}

func roundKey(userID uuid.UUID) string {
    return "round:" + userID.String()
}

func roundLockKey(userID uuid.UUID) string {
    return "round:lock:" + userID.String()
}

// SaveRound starts a fresh round for the user, clearing any submit lock left
// over from the previous one.
func (c *RedisCache) SaveRound(ctx context.Context, userID uuid.UUID, round *models.Round) error {
    data, err := json.Marshal(round)
    if err != nil {
        return err
    }

    pipe := c.client.Pipeline()
    pipe.Del(ctx, roundLockKey(userID))
    pipe.Set(ctx, roundKey(userID), data, roundTTL)
    _, err = pipe.Exec(ctx)
    return err
}

// GetRound returns the user's current round, or nil when no round is active.
func (c *RedisCache) GetRound(ctx context.Context, userID uuid.UUID) (*models.Round, error) {
    data, err := c.client.Get(ctx, roundKey(userID)).Bytes()
    if err == redis.Nil {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }

    var round models.Round
    if err := json.Unmarshal(data, &round); err != nil {
        return nil, err
    }
    return &round, nil
}

// UpdateRound overwrites the round state without touching the submit lock.
func (c *RedisCache) UpdateRound(ctx context.Context, userID uuid.UUID, round *models.Round) error {
    data, err := json.Marshal(round)
    if err != nil {
        return err
    }
    return c.client.Set(ctx, roundKey(userID), data, roundTTL).Err()
}

// TryLockRound takes the submit lock for the user's current round. It returns
// false when the round is already locked, which is how a second submit for
// the same round is turned into a no-op.
func (c *RedisCache) TryLockRound(ctx context.Context, userID uuid.UUID) (bool, error) {
    return c.client.SetNX(ctx, roundLockKey(userID), 1, roundTTL).Result()
}

func tokenKey(token string) string {
    sum := sha256.Sum256([]byte(token))
    return "token:revoked:" + hex.EncodeToString(sum[:])
}

// RevokeToken blacklists a session token until its natural expiry.
func (c *RedisCache) RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
    if ttl <= 0 {
        return nil
    }
    return c.client.Set(ctx, tokenKey(token), 1, ttl).Err()
}

func (c *RedisCache) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
    n, err := c.client.Exists(ctx, tokenKey(token)).Result()
    if err != nil {
        return false, fmt.Errorf("token lookup: %w", err)
    }
    return n > 0, nil
}
