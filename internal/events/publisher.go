// Package events publishes moderation lifecycle events to Redis so other
// services can react to enforcement decisions, such as purging the data of
// permanently banned users.
package events

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// StreamKey is the Redis sorted set holding pending moderation events,
// scored by publication time for FIFO consumption.
const StreamKey = "moderation:events"

// Event types consumed by downstream services.
const (
	TypeUserPermanentlyBanned = "user_permanently_banned"
)

// Event is the wire format for a moderation event.
type Event struct {
	EventID   string    `json:"eventId"`
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher appends moderation events to the Redis event stream.
type Publisher struct {
	client rueidis.Client
	logger *zap.Logger
}

// NewPublisher creates a publisher on the given Redis client.
func NewPublisher(client rueidis.Client, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger.Named("events"),
	}
}

// PublishPermanentBan emits a UserPermanentlyBanned event so downstream
// services can delete the user's stored content.
func (p *Publisher) PublishPermanentBan(ctx context.Context, userID, reason string) error {
	event := &Event{
		EventID:   uuid.New().String(),
		Type:      TypeUserPermanentlyBanned,
		UserID:    userID,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}

	payload, err := sonic.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.client.Do(ctx,
		p.client.B().Zadd().Key(StreamKey).ScoreMember().
			ScoreMember(float64(event.Timestamp.UnixMilli()), string(payload)).Build(),
	).Error()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Info("Published moderation event",
		zap.String("type", event.Type),
		zap.String("eventId", event.EventID),
		zap.String("userId", userID))

	return nil
}

// PendingEvents returns up to batchSize of the oldest unconsumed events.
func (p *Publisher) PendingEvents(ctx context.Context, batchSize int) ([]*Event, error) {
	raw, err := p.client.Do(ctx,
		p.client.B().Zrange().Key(StreamKey).Min("0").Max(strconv.Itoa(batchSize-1)).Build(),
	).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	events := make([]*Event, 0, len(raw))

	for _, member := range raw {
		var event Event
		if err := sonic.Unmarshal([]byte(member), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}

		events = append(events, &event)
	}

	return events, nil
}

// AckEvent removes a consumed event from the stream.
func (p *Publisher) AckEvent(ctx context.Context, event *Event) error {
	payload, err := sonic.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.client.Do(ctx, p.client.B().Zrem().Key(StreamKey).Member(string(payload)).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to ack event: %w", err)
	}

	return nil
}
