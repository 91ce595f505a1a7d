// Package pgnotify источник событий на Postgres LISTEN/NOTIFY.
// Уведомления публикуют триггеры из migrations/00002_document_events.sql.
package pgnotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/event"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// Channel канал, в который пишут триггеры
const Channel = "document_events"

const (
	reconnectBase = time.Second
	reconnectMax  = 30 * time.Second
)

// Listener держит выделенное соединение с LISTEN и переподключается при обрыве
type Listener struct {
	pool    *pgxpool.Pool
	channel string
	logger  *zap.Logger

	connect func(ctx context.Context) (listenConn, error)
	backoff func() retry.Backoff
}

// listenConn соединение, на котором уже выполнен LISTEN
type listenConn interface {
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

// NewListener создаёт источник событий
func NewListener(pool *pgxpool.Pool, logger *zap.Logger) *Listener {
	l := &Listener{
		pool:    pool,
		channel: Channel,
		logger:  logger,
		backoff: func() retry.Backoff {
			return retry.WithCappedDuration(reconnectMax, retry.NewExponential(reconnectBase))
		},
	}
	l.connect = l.listen
	return l
}

// Run слушает канал до отмены контекста. Пауза между попытками подключения
// начинается заново после каждого успешного LISTEN.
func (l *Listener) Run(ctx context.Context, handle event.Handler) error {
	for {
		conn, err := l.reconnect(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}

		err = l.receive(ctx, conn, handle)
		if ctx.Err() != nil {
			return nil
		}
		l.logger.Warn("Event listener disconnected, reconnecting", zap.Error(err))
	}
}

func (l *Listener) reconnect(ctx context.Context) (listenConn, error) {
	var conn listenConn
	err := retry.Do(ctx, l.backoff(), func(ctx context.Context) error {
		c, err := l.connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.logger.Warn("Failed to start listening", zap.Error(err))
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	return conn, err
}

// listen берёт соединение из пула и выполняет LISTEN
func (l *Listener) listen(ctx context.Context) (listenConn, error) {
	pooled, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	// Соединение с LISTEN не возвращаем в пул
	conn := pooled.Hijack()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		conn.Close(context.Background())
		return nil, fmt.Errorf("listen %s: %w", l.channel, err)
	}

	l.logger.Info("Listening for document events", zap.String("channel", l.channel))
	return conn, nil
}

func (l *Listener) receive(ctx context.Context, conn listenConn, handle event.Handler) error {
	defer conn.Close(context.Background())

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		ev, err := Decode(n.Payload)
		if err != nil {
			l.logger.Error("Failed to decode document event",
				zap.Error(err),
				zap.String("payload", n.Payload),
			)
			continue
		}

		handle(ctx, ev)
	}
}

var errIncompleteEvent = errors.New("incomplete event")

// Decode разбирает JSON, который публикуют триггеры
func Decode(payload string) (event.Event, error) {
	var ev event.Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return event.Event{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.Collection == "" || ev.Op == "" || ev.DocumentID == "" || ev.After == nil {
		return event.Event{}, errIncompleteEvent
	}
	return ev, nil
}
