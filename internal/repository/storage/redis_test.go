package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("NewRedisStorage_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: connecting to a running redis
		redisStorage, err := NewRedisStorage(ctx, st.Addr)

		// Then: the connection is usable and closes cleanly
		require.NoError(t, err)
		require.NoError(t, redisStorage.Connection.Ping(ctx).Err())
		require.NoError(t, redisStorage.Close())
	})

	t.Run("NewRedisStorage_Unreachable", func(t *testing.T) {
		ctx, _ := suite.New(t)

		// When: connecting to a port nobody listens on
		redisStorage, err := NewRedisStorage(ctx, "127.0.0.1:1")

		// Then: an error is returned
		require.Error(t, err)
		require.Nil(t, redisStorage)
	})
}
