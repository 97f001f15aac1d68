package notification

import (
    "context"
    "fmt"

    "github.com/redis/go-redis/v9"
)

// DefaultStream is the Redis stream events are appended to when none is configured.
const DefaultStream = "banco:events"

// RedisNotifier appends notifications to a Redis stream so other processes
// can follow ledger activity with XREAD.
type RedisNotifier struct {
    client *redis.Client
    stream string
    maxLen int64
}

// NewRedisNotifier builds a stream notifier. An empty stream selects
// DefaultStream; maxLen caps the stream approximately when positive.
func NewRedisNotifier(client *redis.Client, stream string, maxLen int64) *RedisNotifier {
    if stream == "" {
        stream = DefaultStream
    }
    return &RedisNotifier{client: client, stream: stream, maxLen: maxLen}
}

// Send appends the message as one stream entry.
func (n *RedisNotifier) Send(ctx context.Context, message Message) error {
    args := &redis.XAddArgs{
        Stream: n.stream,
        Values: map[string]any{
            "kind":        message.Kind,
            "destination": message.Destination,
            "reference":   message.Reference,
            "body":        message.Body,
        },
    }
    if n.maxLen > 0 {
        args.MaxLen = n.maxLen
        args.Approx = true
    }
    if err := n.client.XAdd(ctx, args).Err(); err != nil {
        return fmt.Errorf("append to stream %s: %w", n.stream, err)
    }
    return nil
}

// Fanout delivers a message to every notifier and returns the first error.
type Fanout []Notifier

// Send forwards the message to each notifier in order.
func (f Fanout) Send(ctx context.Context, message Message) error {
    var firstErr error
    for _, n := range f {
        if n == nil {
            continue
        }
        if err := n.Send(ctx, message); err != nil && firstErr == nil {
            firstErr = err
        }
    }
    return firstErr
}
