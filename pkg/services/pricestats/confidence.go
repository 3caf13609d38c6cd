package pricestats

// VolumeScore rewards larger samples, up to 40 points.
func VolumeScore(n int) float64 {
	switch {
	case n >= 20:
		return 40
	case n >= 10:
		return 35
	case n >= 5:
		return 25
	case n >= 3:
		return 15
	default:
		return 5
	}
}

// ConsistencyScore rewards a low coefficient of variation, up to 30 points.
func ConsistencyScore(cv float64) float64 {
	switch {
	case cv < 0.1:
		return 30
	case cv < 0.2:
		return 25
	case cv < 0.3:
		return 15
	default:
		return 5
	}
}
