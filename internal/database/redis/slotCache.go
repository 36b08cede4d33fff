package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotCache keeps the expanded booked-slot labels for a (box, date) pair so
// the availability endpoint does not hit Postgres on every poll. Entries are
// invalidated whenever a booking for that pair is created or cancelled.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotCache(client *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{
		client: client,
		ttl:    ttl,
	}
}

func slotKey(boxID int64, date string) string {
	return fmt.Sprintf("slots:%d:%s", boxID, date)
}

func (c *SlotCache) Get(ctx context.Context, boxID int64, date string) ([]string, error) {
	data, err := c.client.Get(ctx, slotKey(boxID, date)).Result()
	if err != nil {
		return nil, err
	}

	var slots []string
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

func (c *SlotCache) Set(ctx context.Context, boxID int64, date string, slots []string) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, slotKey(boxID, date), data, c.ttl).Err()
}

func (c *SlotCache) Invalidate(ctx context.Context, boxID int64, date string) error {
	return c.client.Del(ctx, slotKey(boxID, date)).Err()
}
