// Package feed turns Bybit WebSocket ticker messages into engine price
// updates.
package feed

import (
	"encoding/json"
	"strconv"
	"strings"

	"gttwatch/internal/watch/engine"

	"go.uber.org/zap"
)

// MakeMessageHandler returns a function that handles incoming WebSocket
// messages by parsing ticker data and upserting the last price into the
// engine. Anything that is not a usable ticker update is skipped; a symbol
// with no price yet simply stays ineligible for evaluation.
func MakeMessageHandler(logger *zap.Logger, eng *engine.Engine) func(msg []byte) {
	return func(msg []byte) {
		// Step 1: Extract topic string for early filtering
		var meta struct {
			Topic string `json:"topic"`
		}
		if err := json.Unmarshal(msg, &meta); err != nil {
			logger.Warn("failed to extract topic", zap.Error(err))
			return
		}
		if !isTickerTopic(meta.Topic) {
			return // Ignore non-ticker messages (e.g., subscription responses)
		}

		// Step 2: Fully parse the ticker payload
		var parsed TickerMessage
		if err := json.Unmarshal(msg, &parsed); err != nil {
			logger.Warn("failed to parse ticker payload", zap.Error(err))
			return
		}

		symbol := extractSymbolFromTopic(parsed.Topic) // e.g., "tickers.BTCUSDT" → "BTCUSDT"
		if symbol == "" {
			return
		}

		// Delta messages omit lastPrice when it did not change.
		if parsed.Data.LastPrice == "" {
			return
		}

		price, err := strconv.ParseFloat(parsed.Data.LastPrice, 64)
		if err != nil {
			logger.Warn("unparsable last price",
				zap.String("symbol", symbol),
				zap.String("lastPrice", parsed.Data.LastPrice))
			return
		}

		// Step 3: Upsert into the engine
		eng.UpdatePrice(symbol, price)
	}
}

// isTickerTopic returns true if the topic string indicates a ticker stream.
func isTickerTopic(topic string) bool {
	return strings.HasPrefix(topic, "tickers.")
}

// extractSymbolFromTopic pulls the symbol out of a ticker topic string.
func extractSymbolFromTopic(topic string) string {
	parts := strings.SplitN(topic, ".", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
