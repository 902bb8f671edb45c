package bybit

import "strconv"

// SplitTickerPrices converts a ticker list into parallel symbol and price
// slices for a batched engine update. Tickers with a missing or unparsable
// last price are skipped.
func SplitTickerPrices(tickers []Ticker) ([]string, []float64) {
	symbols := make([]string, 0, len(tickers))
	prices := make([]float64, 0, len(tickers))

	for _, tk := range tickers {
		if tk.Symbol == "" || tk.LastPrice == "" {
			continue
		}
		price, err := strconv.ParseFloat(tk.LastPrice, 64)
		if err != nil {
			continue
		}
		symbols = append(symbols, tk.Symbol)
		prices = append(prices, price)
	}

	return symbols, prices
}
