package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrTopicRequired   = errors.New("messaging: topic is required")
	ErrHandlerRequired = errors.New("messaging: handler is required")
	ErrGroupRequired   = errors.New("messaging: consumer group is required")
	ErrClosed          = errors.New("messaging: client is closed")
)

// Message is a broker independent message.
type Message struct {
	ID        string
	Topic     string
	Key       []byte
	Body      []byte
	Headers   map[string]string
	Timestamp time.Time
	// Attempt starts at 1 and grows with each redelivery, when the broker reports it.
	Attempt int
}

// Header returns the header value or "".
func (m *Message) Header(key string) string {
	if m == nil {
		return ""
	}
	return m.Headers[key]
}

// Handler processes one message.
type Handler func(ctx context.Context, msg *Message) error

type Publisher interface {
	Publish(ctx context.Context, topic string, msg *Message) error
}

type Consumer interface {
	// Consume blocks until ctx is done or the subscription fails.
	Consume(ctx context.Context, topic string, h Handler, opts ...ConsumeOption) error
}

// Messaging is a client able to publish and consume.
type Messaging interface {
	io.Closer
	Publisher
	Consumer
}

func validate(ctx context.Context, topic string, h Handler) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrTopicRequired
	}
	if h == nil {
		return ErrHandlerRequired
	}
	return nil
}
