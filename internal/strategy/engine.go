package strategy

import (
	"fmt"
	"math"
	"time"

	"BounceSentry/internal/indicator"
	"BounceSentry/internal/model"
)

// LabelEliteBuy is the classification applied to every emitted signal.
const LabelEliteBuy = "ELITE_BUY"

// minPriceStrength is the gate floor for the close's position in the day's
// range: the close must sit in the top 40%.
const minPriceStrength = 0.6

// Evaluate applies the oversold-bounce strategy to one symbol snapshot and
// returns a signal, or nil with the outcome explaining why not.
//
// The gate is a strict conjunction: RSI below the oversold threshold, volume
// above the surge threshold, a bullish candle, and a strong close within the
// day's range. Passing the gate is not enough; the confidence score must
// also clear MinConfidence.
//
// Evaluate is a pure function of its inputs: same bar, history, baseline and
// params always produce the same numeric result. asOf is stamped on the
// signal as metadata and plays no part in the decision.
func Evaluate(symbol string, bar model.PriceBar, history []float64, baseline int64, p Params, asOf time.Time) (*model.Signal, model.Outcome) {
	if !bar.Valid() {
		return nil, model.OutcomeInvalidBar
	}
	if len(history) < indicator.DefaultRSIWindow+1 {
		return nil, model.OutcomeInsufficientHistory
	}

	rsi, err := indicator.RSI(history, indicator.DefaultRSIWindow)
	if err != nil {
		// Unreachable with a constant positive window; degrade to neutral.
		rsi = indicator.NeutralRSI
	}
	volumeRatio := indicator.VolumeRatio(bar.Volume, baseline)

	if rsi >= p.RSIOversold ||
		volumeRatio <= p.VolumeSurge ||
		!indicator.BullishCandle(bar) ||
		indicator.PriceStrength(bar) <= minPriceStrength {
		return nil, model.OutcomeNoSignal
	}

	confidence := score(rsi, volumeRatio, p)
	if confidence < p.MinConfidence {
		return nil, model.OutcomeLowConfidence
	}

	return &model.Signal{
		Symbol:      symbol,
		Price:       bar.Close,
		RSI:         round1(rsi),
		VolumeRatio: round1(volumeRatio),
		Confidence:  round1(confidence),
		Target:      round2(bar.Close * (1 + p.TargetGainPct/100)),
		StopLoss:    round2(bar.Close * (1 - p.StopLossPct/100)),
		Label:       LabelEliteBuy,
		Reason:      fmt.Sprintf("Oversold bounce (RSI: %.1f, Volume: %.1fx)", rsi, volumeRatio),
		Date:        asOf,
	}, model.OutcomeSignal
}

// score computes the 0..10 confidence. A deeper oversold reading and a
// bigger volume surge both raise it; the volume factor is capped so a single
// outlier cannot dominate.
func score(rsi, volumeRatio float64, p Params) float64 {
	c := p.Confidence
	rsiFactor := (p.RSIOversold - rsi) / c.RSIDivisor
	volumeFactor := volumeRatio / c.VolumeDivisor
	if volumeFactor > c.VolumeCap {
		volumeFactor = c.VolumeCap
	}
	confidence := c.Base + rsiFactor*c.RSIWeight + (volumeFactor - 1) + c.GateBonus
	if confidence < 0 {
		return 0
	}
	if confidence > 10 {
		return 10
	}
	return confidence
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
