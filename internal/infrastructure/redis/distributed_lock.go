package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrLockNotAcquired = errors.New("ロックを取得できませんでした")
	ErrLockNotOwned    = errors.New("ロックの所有者ではありません")
)

// 所有者トークンが一致する場合のみ削除・延長する
var (
	releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)
	extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)
)

// LockManager はワーカーの多重起動を防ぐための分散ロックを提供する
// 予約のスポット確保には使わない（競合の調停はデータベース側の条件付き更新が担う）
type LockManager struct {
	client *redis.Client
}

func NewLockManager(client *redis.Client) *LockManager {
	return &LockManager{client: client}
}

// DistributedLock は取得済みのロック
// 所有者トークンを保持し、他インスタンスのロックを誤って解放しない
type DistributedLock struct {
	client *redis.Client
	key    string
	token  string
	ttl    time.Duration
}

// AcquireLock はSET NXでロックの取得を試みる
// 既に他インスタンスが保持している場合は ErrLockNotAcquired を返す
func (m *LockManager) AcquireLock(ctx context.Context, name string, ttl time.Duration) (*DistributedLock, error) {
	key := "lock:" + name
	token := uuid.NewString()

	acquired, err := m.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("ロック取得に失敗: %w", err)
	}
	if !acquired {
		return nil, ErrLockNotAcquired
	}

	return &DistributedLock{client: m.client, key: key, token: token, ttl: ttl}, nil
}

// Release はロックを解放する
func (l *DistributedLock) Release(ctx context.Context) error {
	deleted, err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Int()
	if err != nil {
		return fmt.Errorf("ロック解放に失敗: %w", err)
	}
	if deleted == 0 {
		return ErrLockNotOwned
	}
	return nil
}

// Extend はロックの有効期限を延長する
func (l *DistributedLock) Extend(ctx context.Context, ttl time.Duration) error {
	extended, err := extendScript.Run(ctx, l.client, []string{l.key}, l.token, ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("ロック延長に失敗: %w", err)
	}
	if extended == 0 {
		return ErrLockNotOwned
	}
	l.ttl = ttl
	return nil
}
