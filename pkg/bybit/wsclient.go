package bybit

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSClient handles the WebSocket connection to Bybit and message routing.
// Subscription topics come from a provider so that a reconnect can pick up
// watchlist changes made since the last connect.
type WSClient struct {
	url     string
	args    []string
	conn    *websocket.Conn
	topics  func() []string
	handler func([]byte)
	logger  *zap.Logger
}

// NewWSClient creates a new WebSocket client with the given URL and logger.
// topics must return the full list of subscription topics (e.g. "tickers.BTCUSDT").
func NewWSClient(url string, topics func() []string, logger *zap.Logger) *WSClient {
	return &WSClient{
		url:    url,
		topics: topics,
		logger: logger,
	}
}

// SetMessageHandler sets the function to handle incoming messages.
func (c *WSClient) SetMessageHandler(h func([]byte)) {
	c.handler = h
}

// TickerTopic builds the ticker stream topic for one symbol.
func TickerTopic(symbol string) string {
	return "tickers." + symbol
}

// Connect establishes the WebSocket connection and subscribes to the ticker
// channels returned by the topic provider. It does not start the listener.
func (c *WSClient) Connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		c.logger.Error("Failed to connect to WebSocket", zap.String("url", c.url), zap.Error(err))
		return err
	}
	c.conn = conn
	c.logger.Info("WebSocket connected", zap.String("url", c.url))

	return c.subscribe()
}

func (c *WSClient) subscribe() error {
	// Store subscription arguments for future reconnects
	c.args = c.topics()

	subMsg := map[string]interface{}{
		"op":   "subscribe",
		"args": c.args,
	}

	if err := c.conn.WriteJSON(subMsg); err != nil {
		return fmt.Errorf("websocket subscribe failed: %w", err)
	}
	c.logger.Info("subscribed", zap.Int("topics", len(c.args)))

	return nil
}

func (c *WSClient) Listen() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.logger.Error("WebSocket read error", zap.Error(err))

			// Retry reconnecting indefinitely
			for {
				time.Sleep(3 * time.Second)
				if err := c.reconnectAndResubscribe(); err != nil {
					c.logger.Warn("Retrying reconnect...")
					continue
				}
				c.logger.Info("Reconnected successfully")
				break
			}
			continue // Start listening again with the new connection
		}

		if c.handler != nil {
			c.handler(msg)
		}
	}
}

func (c *WSClient) reconnectAndResubscribe() error {
	newConn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return err
	}

	// Close the old connection if it exists
	if c.conn != nil {
		_ = c.conn.Close()
	}

	c.conn = newConn

	// Regenerate subscription topics based on the current watchlist
	return c.subscribe()
}

// Close shuts the underlying connection.
func (c *WSClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
