package redis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

const testChannel = "tictactoe:rounds:test"

func TestNewPublisher(t *testing.T) {
	t.Run("Error on empty channel", func(t *testing.T) {
		// When: a publisher is created without a channel
		publisher, err := NewPublisher(nil, "")

		// Then: ErrEmptyChannel is returned
		require.ErrorIs(t, err, ErrEmptyChannel)
		assert.Nil(t, publisher)
	})
}

func TestPublisher_PublishRound(t *testing.T) {
	t.Run("PublishRound_Delivered", func(t *testing.T) {
		ctx, st := suite.New(t)

		publisher, err := NewPublisher(st.Storage, testChannel)
		require.NoError(t, err)

		// Given: a subscriber on the channel
		subscription := st.Storage.Subscribe(ctx, testChannel)
		t.Cleanup(func() {
			_ = subscription.Close()
		})

		_, err = subscription.Receive(ctx)
		require.NoError(t, err)

		result := &entity.RoundResult{
			SessionID:   "session-1",
			Round:       2,
			Winner:      entity.Player2,
			FirstPlayer: entity.Player1,
			Board:       "\n O | O | O \n",
			Stats:       entity.Stats{Player1Wins: 1, Player2Wins: 1},
		}

		// When: a round result is published
		err = publisher.PublishRound(ctx, result)
		require.NoError(t, err)

		// Then: the subscriber receives the same result
		msg, err := subscription.ReceiveMessage(ctx)
		require.NoError(t, err)
		assert.Equal(t, testChannel, msg.Channel)

		var received entity.RoundResult
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &received))
		assert.Equal(t, *result, received)
	})

	t.Run("PublishRound_NoSubscribers", func(t *testing.T) {
		ctx, st := suite.New(t)

		publisher, err := NewPublisher(st.Storage, testChannel)
		require.NoError(t, err)

		// When: nobody listens on the channel
		err = publisher.PublishRound(ctx, &entity.RoundResult{Tie: true})

		// Then: publishing still succeeds
		require.NoError(t, err)
	})
}
