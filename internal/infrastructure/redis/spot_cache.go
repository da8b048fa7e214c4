package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss = errors.New("キャッシュが見つかりません")
)

// SpotCache はスポットの空き状況キャッシュを管理する
type SpotCache struct {
	client *redis.Client
}

// NewSpotCache は新しいSpotCacheインスタンスを作成する
func NewSpotCache(client *redis.Client) *SpotCache {
	return &SpotCache{client: client}
}

// GetAvailableCount はイベントの予約可能スポット数をキャッシュから取得する
func (c *SpotCache) GetAvailableCount(ctx context.Context, eventID string) (int, error) {
	key := c.availableCountKey(eventID)
	val, err := c.client.Get(ctx, key).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	return val, nil
}

// SetAvailableCount はイベントの予約可能スポット数をキャッシュに保存する
func (c *SpotCache) SetAvailableCount(ctx context.Context, eventID string, count int, ttl time.Duration) error {
	key := c.availableCountKey(eventID)
	err := c.client.Set(ctx, key, count, ttl).Err()
	if err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

// Invalidate はイベントのキャッシュを無効化する
func (c *SpotCache) Invalidate(ctx context.Context, eventID string) error {
	key := c.availableCountKey(eventID)
	err := c.client.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

func (c *SpotCache) availableCountKey(eventID string) string {
	return fmt.Sprintf("spots:available:%s", eventID)
}
