// Package universe holds the symbol universe and per-symbol reference data
// for a scan. Both are injected configuration so the scanner stays decoupled
// from any specific market or instrument list.
package universe

// DefaultBaselineVolume is used for symbols with no configured baseline.
const DefaultBaselineVolume = 30000

// Baselines is a symbol -> reference average volume lookup with a single
// default fallback. Baselines are static configuration, never derived from
// live data.
type Baselines struct {
	table    map[string]int64
	fallback int64
}

// NewBaselines builds a lookup over the given table. A non-positive fallback
// is replaced with DefaultBaselineVolume.
func NewBaselines(table map[string]int64, fallback int64) *Baselines {
	if fallback <= 0 {
		fallback = DefaultBaselineVolume
	}
	b := &Baselines{table: make(map[string]int64, len(table)), fallback: fallback}
	for sym, vol := range table {
		if vol > 0 {
			b.table[sym] = vol
		}
	}
	return b
}

// Lookup returns the baseline volume for symbol, or the fallback when the
// symbol has no specific entry.
func (b *Baselines) Lookup(symbol string) int64 {
	if v, ok := b.table[symbol]; ok {
		return v
	}
	return b.fallback
}

// Fallback returns the default baseline used for unknown symbols.
func (b *Baselines) Fallback() int64 { return b.fallback }
