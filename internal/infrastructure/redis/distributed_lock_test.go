package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockManager(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()
	manager := NewLockManager(client)

	t.Run("取得中は他の取得が失敗する", func(t *testing.T) {
		held, err := manager.AcquireLock(ctx, "refresh-guard", 5*time.Second)
		require.NoError(t, err)
		defer held.Release(ctx)

		second, err := manager.AcquireLock(ctx, "refresh-guard", 5*time.Second)
		assert.ErrorIs(t, err, ErrLockNotAcquired)
		assert.Nil(t, second)
	})

	t.Run("解放すれば再取得できる", func(t *testing.T) {
		held, err := manager.AcquireLock(ctx, "refresh-guard-2", 5*time.Second)
		require.NoError(t, err)
		require.NoError(t, held.Release(ctx))

		again, err := manager.AcquireLock(ctx, "refresh-guard-2", 5*time.Second)
		require.NoError(t, err)
		defer again.Release(ctx)
	})

	t.Run("TTL経過で自動解放される", func(t *testing.T) {
		_, err := manager.AcquireLock(ctx, "refresh-guard-ttl", 100*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(200 * time.Millisecond)

		again, err := manager.AcquireLock(ctx, "refresh-guard-ttl", time.Second)
		require.NoError(t, err)
		defer again.Release(ctx)
	})

	t.Run("二重解放はErrLockNotOwned", func(t *testing.T) {
		held, err := manager.AcquireLock(ctx, "refresh-guard-3", time.Second)
		require.NoError(t, err)
		require.NoError(t, held.Release(ctx))

		assert.ErrorIs(t, held.Release(ctx), ErrLockNotOwned)
	})
}

func TestDistributedLock_Extend(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()
	manager := NewLockManager(client)

	t.Run("延長中はロックが維持される", func(t *testing.T) {
		held, err := manager.AcquireLock(ctx, "extend-guard", time.Second)
		require.NoError(t, err)
		defer held.Release(ctx)

		require.NoError(t, held.Extend(ctx, 5*time.Second))

		_, err = manager.AcquireLock(ctx, "extend-guard", time.Second)
		assert.ErrorIs(t, err, ErrLockNotAcquired)
	})

	t.Run("解放済みロックの延長はErrLockNotOwned", func(t *testing.T) {
		held, err := manager.AcquireLock(ctx, "extend-guard-2", time.Second)
		require.NoError(t, err)
		require.NoError(t, held.Release(ctx))

		assert.ErrorIs(t, held.Extend(ctx, 5*time.Second), ErrLockNotOwned)
	})
}
