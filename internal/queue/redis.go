package queue

import (
	"context"
	"fmt"

	"redlenic/storefront/internal/domain/event"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type Publisher interface {
	Publish(ctx context.Context, event event.Event) (string, error) // Returns message ID
}

type redisQueue struct {
	redisClient  *redis.Client
	streamPrefix string
	maxLen       int64
}

// NewRedisQueue publishes events to capped streams named "redlenic:stream:<EventType>"
func NewRedisQueue(redisClient *redis.Client, maxLen int64) Publisher {
	return &redisQueue{
		redisClient:  redisClient,
		streamPrefix: "redlenic:stream:",
		maxLen:       maxLen,
	}
}

func (q *redisQueue) streamName(eventType string) string {
	return q.streamPrefix + eventType
}

func (q *redisQueue) Publish(ctx context.Context, e event.Event) (string, error) {
	eventType := e.EventType()
	streamName := q.streamName(eventType)

	eventValue, err := e.EventValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: streamName,
		Values: map[string]interface{}{
			"event_type": eventType,
			"event_data": string(eventValue),
		},
	}
	if q.maxLen > 0 {
		args.MaxLen = q.maxLen
		args.Approx = true
	}

	messageID, err := q.redisClient.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add event to Redis stream %s: %w", streamName, err)
	}

	log.Debugf("Published %s to stream %s with message ID: %s", eventType, streamName, messageID)
	return messageID, nil
}

type nopPublisher struct{}

// NewNopPublisher drops every event; used when the event stream is disabled
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, event.Event) (string, error) {
	return "", nil
}
