package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

var ErrNATSURLRequired = errors.New("messaging: nats url is required")

type NATSConfig struct {
	URL  string
	Name string
}

// NATS uses core subjects; a failed handler is logged since core NATS has no
// redelivery.
type NATS struct {
	conn *nats.Conn
}

func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}
	return &NATS{conn: conn}, nil
}

func (n *NATS) Publish(ctx context.Context, topic string, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrTopicRequired
	}

	nm := nats.NewMsg(topic)
	nm.Data = msg.Body
	for k, v := range msg.Headers {
		nm.Header.Set(k, v)
	}

	if err := n.conn.PublishMsg(nm); err != nil {
		return fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("messaging: nats flush: %w", err)
	}
	return nil
}

func (n *NATS) Consume(ctx context.Context, topic string, h Handler, opts ...ConsumeOption) error {
	if err := validate(ctx, topic, h); err != nil {
		return err
	}
	o := newConsumeOptions(opts...)

	ch := make(chan *nats.Msg, o.maxInFlight)
	sub, err := n.conn.ChanQueueSubscribe(topic, o.group, ch)
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}

	var seq uint64
	var seqMu sync.Mutex
	var wg sync.WaitGroup
	for range o.concurrency {
		wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case nm := <-ch:
					seqMu.Lock()
					seq++
					id := strconv.FormatUint(seq, 10)
					seqMu.Unlock()

					headers := make(map[string]string, len(nm.Header))
					for k := range nm.Header {
						headers[k] = nm.Header.Get(k)
					}
					msg := &Message{ID: id, Topic: nm.Subject, Body: nm.Data, Headers: headers, Timestamp: time.Now(), Attempt: 1}
					if err := dispatch(ctx, "nats", h, msg); err != nil {
						slog.ErrorContext(ctx, "nats handler failed", "topic", topic, "error", err)
					}
				}
			}
		})
	}

	<-ctx.Done()
	uerr := sub.Drain()
	wg.Wait()
	return errors.Join(ctx.Err(), uerr)
}

func (n *NATS) Close() error {
	err := n.conn.Drain()
	n.conn.Close()
	return err
}
