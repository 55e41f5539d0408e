package indicator

import "BounceSentry/internal/model"

// PriceStrength reports where the close sits within the day's trading range
// (0.0 = at the low, 1.0 = at the high). A zero-range or inverted bar yields
// the neutral midpoint 0.5, meaning "no information" rather than an actual
// mid-range close. Closes outside a malformed range clamp to [0, 1].
func PriceStrength(bar model.PriceBar) float64 {
	if bar.High <= bar.Low {
		return 0.5
	}
	s := (bar.Close - bar.Low) / (bar.High - bar.Low)
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	return s
}

// BullishCandle reports whether the bar closed above its open.
func BullishCandle(bar model.PriceBar) bool {
	return bar.Close > bar.Open
}
