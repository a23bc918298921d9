package utils

// NormalizeMinMax scales values into [0, 1]. When every value is equal the
// result is 0.5 for each entry. With invert set, higher input maps to a
// lower normalized value (used for reaction times, where lower is better).
func NormalizeMinMax(values []float64, invert bool) []float64 {
	if len(values) == 0 {
		return nil
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	normalized := make([]float64, len(values))
	valueRange := maxVal - minVal
	if valueRange == 0 {
		for i := range normalized {
			normalized[i] = 0.5
		}
		return normalized
	}

	for i, v := range values {
		if invert {
			normalized[i] = (maxVal - v) / valueRange
		} else {
			normalized[i] = (v - minVal) / valueRange
		}
	}

	return normalized
}
