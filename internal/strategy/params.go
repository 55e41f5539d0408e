package strategy

import "fmt"

// ConfidenceParams holds the tunable constants of the confidence formula.
// The defaults were chosen empirically; they are configuration, not law.
type ConfidenceParams struct {
	Base          float64 `yaml:"base"`           // score for merely clearing the gate
	GateBonus     float64 `yaml:"gate_bonus"`     // flat bonus added on top of Base
	RSIDivisor    float64 `yaml:"rsi_divisor"`    // RSI margin below threshold per +1.0 factor
	RSIWeight     float64 `yaml:"rsi_weight"`     // weight of the RSI factor
	VolumeDivisor float64 `yaml:"volume_divisor"` // volume ratio per +1.0 factor
	VolumeCap     float64 `yaml:"volume_cap"`     // cap so one volume outlier cannot dominate
}

// Params is the fixed strategy configuration for one scan. It is owned by
// the orchestrator and passed by value into Evaluate; immutable for the
// duration of a scan.
type Params struct {
	RSIOversold   float64          `yaml:"rsi_oversold"`
	VolumeSurge   float64          `yaml:"volume_surge"`
	MinConfidence float64          `yaml:"min_confidence"`
	TargetGainPct float64          `yaml:"target_gain_pct"`
	StopLossPct   float64          `yaml:"stop_loss_pct"`
	Confidence    ConfidenceParams `yaml:"confidence"`
}

// DefaultParams returns the oversold-bounce strategy defaults.
func DefaultParams() Params {
	return Params{
		RSIOversold:   26,
		VolumeSurge:   2.5,
		MinConfidence: 7.0,
		TargetGainPct: 2.8,
		StopLossPct:   0.8,
		Confidence: ConfidenceParams{
			Base:          6.0,
			GateBonus:     0.8,
			RSIDivisor:    8,
			RSIWeight:     2.5,
			VolumeDivisor: 2.0,
			VolumeCap:     2.5,
		},
	}
}

// Validate checks the parameter bundle for contract violations.
func (p Params) Validate() error {
	if p.RSIOversold <= 0 || p.RSIOversold >= 100 {
		return fmt.Errorf("rsi_oversold must be in (0, 100), got %.1f", p.RSIOversold)
	}
	if p.VolumeSurge <= 0 {
		return fmt.Errorf("volume_surge must be positive, got %.2f", p.VolumeSurge)
	}
	if p.MinConfidence < 0 || p.MinConfidence > 10 {
		return fmt.Errorf("min_confidence must be in [0, 10], got %.1f", p.MinConfidence)
	}
	if p.TargetGainPct <= 0 {
		return fmt.Errorf("target_gain_pct must be positive, got %.2f", p.TargetGainPct)
	}
	if p.StopLossPct <= 0 || p.StopLossPct >= 100 {
		return fmt.Errorf("stop_loss_pct must be in (0, 100), got %.2f", p.StopLossPct)
	}
	if p.Confidence.RSIDivisor <= 0 {
		return fmt.Errorf("confidence.rsi_divisor must be positive, got %.2f", p.Confidence.RSIDivisor)
	}
	if p.Confidence.VolumeDivisor <= 0 {
		return fmt.Errorf("confidence.volume_divisor must be positive, got %.2f", p.Confidence.VolumeDivisor)
	}
	return nil
}
