package events

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nats-io/nats.go"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Client publishes and receives results over a NATS connection.
type Client struct {
	conn   *nats.Conn
	prefix string
	logger *log.Logger
}

var _ core.ResultPublisher = (*Client)(nil)

// Connect dials cfg.NATSURL with reconnect handling.
func Connect(cfg config.EventsConfig, logger *log.Logger) (*Client, error) {
	if logger == nil {
		logger = log.Default()
	}
	opts := []nats.Option{
		nats.Name("pocket-arcade"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(10 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(*nats.Conn) {
			logger.Debug("nats connection closed")
		}),
	}

	conn, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("events: cannot connect to %s: %w", cfg.NATSURL, err)
	}
	return &Client{conn: conn, prefix: cfg.Subject, logger: logger}, nil
}

// Publish sends r on the subject of its game.
func (c *Client) Publish(ctx context.Context, r core.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if err := c.conn.Publish(Subject(c.prefix, r.GameID), data); err != nil {
		return fmt.Errorf("events: cannot publish: %w", err)
	}
	return nil
}

// Subscribe delivers results of gameID (every game when empty) to handler
// until ctx is done. Malformed messages are logged and skipped.
func (c *Client) Subscribe(ctx context.Context, gameID string, handler func(core.Result)) error {
	sub, err := c.conn.Subscribe(Subject(c.prefix, gameID), func(msg *nats.Msg) {
		r, err := Decode(msg.Data)
		if err != nil {
			c.logger.Warn("skipping result", "subject", msg.Subject, "error", err)
			return
		}
		handler(r)
	})
	if err != nil {
		return fmt.Errorf("events: cannot subscribe: %w", err)
	}
	defer sub.Unsubscribe()

	<-ctx.Done()
	return nil
}

// Flush waits until the server has processed buffered publishes.
func (c *Client) Flush() error {
	return c.conn.Flush()
}

// Close drains and closes the connection.
func (c *Client) Close() {
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
	}
}
