package indicator

// VolumeRatio normalizes the current volume against a baseline average. A
// non-positive baseline yields the neutral ratio 1.0. No upper clamp is
// applied here; capping happens in confidence scoring.
func VolumeRatio(current, baseline int64) float64 {
	if baseline <= 0 {
		return 1.0
	}
	return float64(current) / float64(baseline)
}
