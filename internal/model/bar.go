package model

// PriceBar is one OHLCV snapshot for a symbol at evaluation time.
type PriceBar struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Valid reports whether the bar is usable for evaluation: a positive close
// and a non-inverted range. Providers that omit open/high/low fill them with
// the close, so equal values are fine.
func (b PriceBar) Valid() bool {
	return b.Close > 0 && b.High >= b.Low
}
