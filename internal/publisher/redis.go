package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
)

// DefaultPublishTimeout bounds a single publish so a stalled Redis cannot hold
// up the sinks rendered after it.
const DefaultPublishTimeout = 2 * time.Second

// redisClient is the subset of *redis.Client the publisher needs.
type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher pushes every rendered card to a Redis pub/sub channel so
// other processes (signage, bots) can follow the widget without polling.
type RedisPublisher struct {
	client  redisClient
	channel string
	timeout time.Duration
}

// NewRedisPublisher creates a publisher on the given channel.
func NewRedisPublisher(client redisClient, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
		timeout: DefaultPublishTimeout,
	}
}

// Publish sends the card as JSON, giving up after the publish timeout.
func (p *RedisPublisher) Publish(ctx context.Context, card cards.Card) error {
	data, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("marshaling card: %w", err)
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publishing card %s: %w", card.ViewKey, err)
	}
	return nil
}
