package pgxcasbin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/persist"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/atomic"
)

const defaultChannel = "casbin_policy_updates"

var ErrWatcherClosed = errors.New("pgxcasbin: watcher closed")

var _ persist.Watcher = (*Watcher)(nil)

// Notification is the payload sent on the channel after a policy change.
type Notification struct {
	ID string `json:"id"`
	At int64  `json:"at"`
}

type WatcherOptions struct {
	Channel string
	// LocalID identifies this instance; own notifications are skipped unless NotifySelf.
	LocalID    string
	NotifySelf bool
}

// Watcher broadcasts policy changes with pg_notify and listens for changes
// made by other instances on a dedicated connection.
type Watcher struct {
	pool   *pgxpool.Pool
	opts   WatcherOptions
	cancel context.CancelFunc
	done   chan struct{}
	closed *atomic.Bool

	mu       sync.RWMutex
	callback func(string)
}

// NewWatcher starts listening immediately. The listener reconnects with a
// capped fibonacci backoff until Close is called.
func NewWatcher(ctx context.Context, pool *pgxpool.Pool, opts WatcherOptions) (*Watcher, error) {
	if opts.Channel == "" {
		opts.Channel = defaultChannel
	}
	if strings.ContainsAny(opts.Channel, `"; `) {
		return nil, fmt.Errorf("pgxcasbin: invalid channel %q", opts.Channel)
	}

	lctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w := &Watcher{
		pool:   pool,
		opts:   opts,
		cancel: cancel,
		done:   make(chan struct{}),
		closed: atomic.NewBool(false),
	}

	go w.run(lctx)

	return w, nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	backoff := retry.WithCappedDuration(5*time.Second, retry.NewFibonacci(200*time.Millisecond))
	_ = retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := w.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		slog.WarnContext(ctx, "casbin watcher disconnected, retrying", "channel", w.opts.Channel, "error", err)
		return retry.RetryableError(err)
	})
}

func (w *Watcher) listen(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `listen "`+w.opts.Channel+`"`); err != nil {
		return err
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var msg Notification
		if err := json.Unmarshal([]byte(n.Payload), &msg); err != nil {
			slog.WarnContext(ctx, "casbin watcher dropped malformed payload", "payload", n.Payload)
			continue
		}
		if msg.ID == w.opts.LocalID && !w.opts.NotifySelf {
			continue
		}

		w.mu.RLock()
		cb := w.callback
		w.mu.RUnlock()
		if cb != nil {
			cb(n.Payload)
		}
	}
}

func (w *Watcher) SetUpdateCallback(cb func(string)) error {
	w.mu.Lock()
	w.callback = cb
	w.mu.Unlock()
	return nil
}

// Update tells every listening instance to reload its policy.
func (w *Watcher) Update() error {
	if w.closed.Load() {
		return ErrWatcherClosed
	}

	payload, err := json.Marshal(Notification{ID: w.opts.LocalID, At: time.Now().UnixMilli()})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = w.pool.Exec(ctx, "select pg_notify($1, $2)", w.opts.Channel, string(payload))
	return err
}

func (w *Watcher) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	w.cancel()
	<-w.done
}

// ReloadCallback reloads the enforcer's policy from the adapter.
func ReloadCallback(e casbin.IEnforcer) func(string) {
	return func(payload string) {
		if err := e.LoadPolicy(); err != nil {
			slog.Error("failed to reload casbin policy", "payload", payload, "error", err)
		}
	}
}
