package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

const channelName = "row_changes"

// Event mirrors the NOTIFY payload emitted by the row_changes triggers.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// Listener fans out Postgres row-change notifications to subscribers so
// dashboards refresh without polling.
type Listener struct {
	pool *pgxpool.Pool

	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewListener(pool *pgxpool.Pool) *Listener {
	return &Listener{pool: pool, subs: map[chan Event]struct{}{}}
}

// Subscribe registers a new event channel. The channel is buffered; slow
// consumers drop events rather than block the listener.
func (l *Listener) Subscribe() chan Event {
	ch := make(chan Event, 16)
	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()
	return ch
}

func (l *Listener) Unsubscribe(ch chan Event) {
	l.mu.Lock()
	if _, ok := l.subs[ch]; ok {
		delete(l.subs, ch)
		close(ch)
	}
	l.mu.Unlock()
}

// Run blocks on the dedicated LISTEN connection until ctx is cancelled,
// reconnecting with a short delay on connection loss.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			utils.Logger.WithError(err).Warn("row-change listener disconnected, retrying")
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channelName); err != nil {
		return err
	}
	utils.Logger.Info("listening for row changes")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev Event
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			utils.Logger.WithError(err).Warn("malformed row-change payload")
			continue
		}
		l.broadcast(ev)
	}
}

func (l *Listener) broadcast(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
