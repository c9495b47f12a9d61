package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrEmptyChannel = errors.New("redis channel name is empty")

// Publisher announces finished rounds on a Redis Pub/Sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) (*Publisher, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	return &Publisher{
		client:  client,
		channel: channel,
	}, nil
}

// PublishRound - sends the round result as JSON. Nobody listening is not an error.
func (that *Publisher) PublishRound(ctx context.Context, result *entity.RoundResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal round result: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish round result: %w", err)
	}

	return nil
}

func (that *Publisher) Channel() string {
	return that.channel
}
