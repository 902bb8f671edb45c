package bybit

import "encoding/json"

// Response represents a generic response from Bybit's V5 REST API.
// This structure covers the standard response envelope used across all endpoints.
type Response struct {
	RetCode    int                    `json:"retCode"`    // 0 means success; non-zero indicates an error code
	RetMsg     string                 `json:"retMsg"`     // Human-readable message describing the result or error
	Result     json.RawMessage        `json:"result"`     // Delay decoding // Main response payload (varies per endpoint)
	RetExtInfo map[string]interface{} `json:"retExtInfo"` // Optional extra info (e.g. rate limits, error hints)
	Time       int64                  `json:"time"`       // Server timestamp (in milliseconds since epoch)
}

// TickerListResponse is the result payload of /v5/market/tickers.
type TickerListResponse struct {
	Category string   `json:"category"` // e.g., "linear", "spot"
	List     []Ticker `json:"list"`
}

// Ticker carries the market snapshot fields for one symbol. Prices arrive as
// strings on the wire.
type Ticker struct {
	Symbol    string `json:"symbol"`    // e.g., "BTCUSDT"
	LastPrice string `json:"lastPrice"` // last traded price
	Bid1Price string `json:"bid1Price"`
	Ask1Price string `json:"ask1Price"`
}
