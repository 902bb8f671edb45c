package feed

import "gttwatch/pkg/bybit"

// TickerMessage represents a WebSocket message from Bybit carrying a ticker
// update for one symbol.
type TickerMessage struct {
	Topic string       `json:"topic"` // Topic string of the subscription stream, e.g., "tickers.BTCUSDT"
	Type  string       `json:"type"`  // Message type, "snapshot" or "delta"
	Data  bybit.Ticker `json:"data"`  // Ticker payload; delta messages carry only changed fields
	Ts    int64        `json:"ts"`    // Timestamp (in milliseconds) when the message was generated
}
