package repository

import (
	"context"
	"testing"
	"time"

	redisapp "premium_motors/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func newMockedTokenRepo(t *testing.T) (*RedisTokenRepo, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	return NewRedisTokenRepo(&redisapp.Client{Client: db}), mock
}

func TestRedisTokenRepo_SaveRefreshToken(t *testing.T) {
	repo, mock := newMockedTokenRepo(t)
	ctx := context.Background()

	mock.ExpectSet("refresh:user-1:tok-1", "1", time.Hour).SetVal("OK")

	err := repo.SaveRefreshToken(ctx, "user-1", "tok-1", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenRepo_GetRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("token present", func(t *testing.T) {
		repo, mock := newMockedTokenRepo(t)

		mock.ExpectGet("refresh:user-1:tok-1").SetVal("1")

		ok, err := repo.GetRefreshToken(ctx, "user-1", "tok-1")

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("token missing", func(t *testing.T) {
		repo, mock := newMockedTokenRepo(t)

		mock.ExpectGet("refresh:user-1:tok-2").RedisNil()

		ok, err := repo.GetRefreshToken(ctx, "user-1", "tok-2")

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRedisTokenRepo_DeleteRefreshToken(t *testing.T) {
	repo, mock := newMockedTokenRepo(t)
	ctx := context.Background()

	mock.ExpectDel("refresh:user-1:tok-1").SetVal(1)

	err := repo.DeleteRefreshToken(ctx, "user-1", "tok-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenRepo_DeleteAllUserTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("drops every key", func(t *testing.T) {
		repo, mock := newMockedTokenRepo(t)

		mock.ExpectKeys("refresh:user-1:*").
			SetVal([]string{"refresh:user-1:tok-1", "refresh:user-1:tok-2"})
		mock.ExpectDel("refresh:user-1:tok-1", "refresh:user-1:tok-2").SetVal(2)

		err := repo.DeleteAllUserTokens(ctx, "user-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no keys is a no-op", func(t *testing.T) {
		repo, mock := newMockedTokenRepo(t)

		mock.ExpectKeys("refresh:user-1:*").SetVal([]string{})

		err := repo.DeleteAllUserTokens(ctx, "user-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
