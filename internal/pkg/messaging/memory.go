package messaging

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

const memoryMaxAttempts = 3

// Memory is an in-process broker. Each consumer group receives every message
// once; a failing handler gets the message again until memoryMaxAttempts.
type Memory struct {
	mu     sync.RWMutex
	groups map[string]map[string]chan *Message
	closed bool
	seq    atomic.Uint64
}

func NewMemory() *Memory {
	return &Memory{groups: map[string]map[string]chan *Message{}}
}

func (m *Memory) Publish(ctx context.Context, topic string, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrTopicRequired
	}

	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return ErrClosed
	}
	targets := slices.Collect(maps.Values(m.groups[topic]))
	m.mu.RUnlock()

	id := strconv.FormatUint(m.seq.Add(1), 10)
	for _, ch := range targets {
		out := &Message{
			ID:        id,
			Topic:     topic,
			Key:       msg.Key,
			Body:      msg.Body,
			Headers:   maps.Clone(msg.Headers),
			Timestamp: time.Now(),
			Attempt:   1,
		}
		select {
		case ch <- out:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (m *Memory) Consume(ctx context.Context, topic string, h Handler, opts ...ConsumeOption) error {
	if err := validate(ctx, topic, h); err != nil {
		return err
	}
	o := newConsumeOptions(opts...)

	ch, err := m.subscribe(topic, o)
	if err != nil {
		return err
	}
	defer m.unsubscribe(topic, o.group)

	var wg sync.WaitGroup
	for range o.concurrency {
		wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case msg := <-ch:
					m.deliver(ctx, h, msg)
				}
			}
		})
	}
	wg.Wait()
	return ctx.Err()
}

func (m *Memory) deliver(ctx context.Context, h Handler, msg *Message) {
	for {
		err := dispatch(ctx, "memory", h, msg)
		if err == nil {
			return
		}
		if msg.Attempt >= memoryMaxAttempts || ctx.Err() != nil {
			slog.ErrorContext(ctx, "memory broker dropped message", "topic", msg.Topic, "id", msg.ID, "attempt", msg.Attempt, "error", err)
			return
		}
		msg.Attempt++
	}
}

func (m *Memory) subscribe(topic string, o consumeOptions) (chan *Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}

	if m.groups[topic] == nil {
		m.groups[topic] = map[string]chan *Message{}
	}
	ch, ok := m.groups[topic][o.group]
	if !ok {
		ch = make(chan *Message, o.maxInFlight)
		m.groups[topic][o.group] = ch
	}
	return ch, nil
}

func (m *Memory) unsubscribe(topic, group string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.groups[topic], group)
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
