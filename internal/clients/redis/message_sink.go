package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
	"github.com/Digital-Coach-Women/APP-API/internal/services"
)

// messageSink appends chat messages to a per-chat Redis stream. Streams are
// append-only, which matches the external store contract: a message either
// gets a receipt ID or the send fails.
type messageSink struct {
	log       *logger.Logger
	rdb       *goredis.Client
	keyPrefix string
}

func NewMessageSink(log *logger.Logger, addr, keyPrefix string) (services.MessageSink, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	if keyPrefix == "" {
		keyPrefix = "chats"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &messageSink{
		log:       log.With("client", "RedisMessageSink"),
		rdb:       rdb,
		keyPrefix: keyPrefix,
	}, nil
}

func (s *messageSink) Append(ctx context.Context, chatID uuid.UUID, senderID uuid.UUID, senderName, message string) (string, error) {
	key := fmt.Sprintf("%s:chat-%s", s.keyPrefix, chatID)
	id, err := s.rdb.XAdd(ctx, &goredis.XAddArgs{
		Stream: key,
		Values: map[string]interface{}{
			"user_id":   senderID.String(),
			"user_name": senderName,
			"message":   message,
			"date":      time.Now().UTC().Format(time.RFC3339),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd %s: %w", key, err)
	}
	return id, nil
}
