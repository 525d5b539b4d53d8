package messaging

type consumeOptions struct {
	group       string
	concurrency int
	maxInFlight int
}

// ConsumeOption configures a subscription.
type ConsumeOption func(*consumeOptions)

func newConsumeOptions(opts ...ConsumeOption) consumeOptions {
	o := consumeOptions{concurrency: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.concurrency <= 0 {
		o.concurrency = 1
	}
	if o.maxInFlight < o.concurrency {
		o.maxInFlight = o.concurrency
	}
	return o
}

// WithGroup names the competing consumer group. It is the NSQ channel, the
// NATS queue group, the Kafka group id and the Pub/Sub subscription id.
func WithGroup(group string) ConsumeOption {
	return func(o *consumeOptions) { o.group = group }
}

// WithConcurrency sets how many handlers run in parallel.
func WithConcurrency(n int) ConsumeOption {
	return func(o *consumeOptions) { o.concurrency = n }
}

// WithMaxInFlight limits unacknowledged messages held by the client.
func WithMaxInFlight(n int) ConsumeOption {
	return func(o *consumeOptions) { o.maxInFlight = n }
}
