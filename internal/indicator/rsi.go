package indicator

import "errors"

// DefaultRSIWindow is the lookback used for the relative strength index.
const DefaultRSIWindow = 14

// NeutralRSI is returned when there is not enough history to say anything.
const NeutralRSI = 50.0

// RSI computes the relative strength index over the given window using a
// simple rolling mean of gains and losses (Cutler's variant, not Wilder
// smoothing). Prices must be oldest first, ending with the evaluation-day
// close. Requires at least window+1 prices; returns NeutralRSI otherwise.
//
// When the mean loss over the window is zero the ratio is undefined; the
// convention here is RSI = 100 if there was any gain, NeutralRSI for a
// perfectly flat window.
func RSI(prices []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(prices) < window+1 {
		return NeutralRSI, nil
	}

	var gains, losses float64
	for i := len(prices) - window; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change // make positive
		}
	}
	avgGain := gains / float64(window)
	avgLoss := losses / float64(window)

	if avgLoss == 0 {
		if avgGain > 0 {
			return 100.0, nil
		}
		return NeutralRSI, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
