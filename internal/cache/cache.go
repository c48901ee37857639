package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/provider-scheduler/internal/config"
)

const (
	dashboardTTL  = 5 * time.Minute
	resetTokenTTL = 30 * time.Minute
)

type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, cache disabled: %v", err)
		return &Cache{client: nil}
	}

	return &Cache{client: client}
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func dashboardKey(providerID uint) string {
	return fmt.Sprintf("dashboard:%d", providerID)
}

func (c *Cache) GetDashboard(ctx context.Context, providerID uint) (string, bool) {
	if c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, dashboardKey(providerID)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) SetDashboard(ctx context.Context, providerID uint, payload string) {
	if c.client == nil {
		return
	}
	c.client.Set(ctx, dashboardKey(providerID), payload, dashboardTTL)
}

func (c *Cache) InvalidateDashboard(ctx context.Context, providerID uint) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, dashboardKey(providerID))
}

// --------------------------------------------------
// Password reset tokens
// --------------------------------------------------

func resetKey(token string) string {
	return "pwreset:" + token
}

func (c *Cache) StoreResetToken(ctx context.Context, token string, providerID uint) error {
	if c.client == nil {
		return fmt.Errorf("cache unavailable")
	}
	return c.client.Set(ctx, resetKey(token), providerID, resetTokenTTL).Err()
}

func (c *Cache) ConsumeResetToken(ctx context.Context, token string) (uint, bool) {
	if c.client == nil {
		return 0, false
	}

	val, err := c.client.Get(ctx, resetKey(token)).Uint64()
	if err != nil {
		return 0, false
	}

	c.client.Del(ctx, resetKey(token))
	return uint(val), true
}
