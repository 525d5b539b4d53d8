package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"
)

var ErrKafkaBrokersRequired = errors.New("messaging: kafka brokers are required")

type KafkaConfig struct {
	Brokers []string
	// MaxRetries bounds in-process redelivery before the offset is committed anyway.
	MaxRetries uint64
}

// Kafka commits an offset once its handler succeeds or exhausts its retries.
type Kafka struct {
	cfg    KafkaConfig
	writer *kafka.Writer

	mu      sync.Mutex
	readers []*kafka.Reader
}

func NewKafka(cfg KafkaConfig) (*Kafka, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrKafkaBrokersRequired
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 5
	}

	return &Kafka{
		cfg: cfg,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}, nil
}

func (k *Kafka) Publish(ctx context.Context, topic string, msg *Message) error {
	if topic == "" {
		return ErrTopicRequired
	}

	km := kafka.Message{Topic: topic, Key: msg.Key, Value: msg.Body, Time: time.Now()}
	for hk, hv := range msg.Headers {
		km.Headers = append(km.Headers, kafka.Header{Key: hk, Value: []byte(hv)})
	}

	if err := k.writer.WriteMessages(ctx, km); err != nil {
		return fmt.Errorf("messaging: kafka publish: %w", err)
	}
	return nil
}

func (k *Kafka) Consume(ctx context.Context, topic string, h Handler, opts ...ConsumeOption) error {
	if err := validate(ctx, topic, h); err != nil {
		return err
	}
	o := newConsumeOptions(opts...)
	if o.group == "" {
		return ErrGroupRequired
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        k.cfg.Brokers,
		GroupID:        o.group,
		Topic:          topic,
		MaxBytes:       10e6,
		QueueCapacity:  o.maxInFlight,
		CommitInterval: 0,
	})
	k.mu.Lock()
	k.readers = append(k.readers, r)
	k.mu.Unlock()

	ch := make(chan kafka.Message, o.maxInFlight)
	var wg sync.WaitGroup
	for range o.concurrency {
		wg.Go(func() {
			for km := range ch {
				k.handle(ctx, r, h, km)
			}
		})
	}

	var fetchErr error
	for {
		km, err := r.FetchMessage(ctx)
		if err != nil {
			fetchErr = err
			break
		}
		ch <- km
	}
	close(ch)
	wg.Wait()

	if errors.Is(fetchErr, context.Canceled) || errors.Is(fetchErr, context.DeadlineExceeded) {
		return fetchErr
	}
	return fmt.Errorf("messaging: kafka fetch: %w", fetchErr)
}

func (k *Kafka) handle(ctx context.Context, r *kafka.Reader, h Handler, km kafka.Message) {
	headers := make(map[string]string, len(km.Headers))
	for _, hd := range km.Headers {
		headers[hd.Key] = string(hd.Value)
	}

	attempt := 0
	b := retry.WithMaxRetries(k.cfg.MaxRetries, retry.NewExponential(100*time.Millisecond))
	b = retry.WithCappedDuration(5*time.Second, b)

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		msg := &Message{
			ID:        strconv.Itoa(km.Partition) + "-" + strconv.FormatInt(km.Offset, 10),
			Topic:     km.Topic,
			Key:       km.Key,
			Body:      km.Value,
			Headers:   headers,
			Timestamp: km.Time,
			Attempt:   attempt,
		}
		if err := dispatch(ctx, "kafka", h, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "kafka handler gave up on message", "topic", km.Topic, "partition", km.Partition, "offset", km.Offset, "error", err)
	}

	if err := r.CommitMessages(context.WithoutCancel(ctx), km); err != nil {
		slog.ErrorContext(ctx, "kafka commit failed", "topic", km.Topic, "offset", km.Offset, "error", err)
	}
}

func (k *Kafka) Close() error {
	k.mu.Lock()
	readers := k.readers
	k.readers = nil
	k.mu.Unlock()

	var err error
	for _, r := range readers {
		err = errors.Join(err, r.Close())
	}
	return errors.Join(err, k.writer.Close())
}
