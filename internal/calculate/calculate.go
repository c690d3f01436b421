package calculate

// Average calculates simple average
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, value := range values {
		sum += value
	}

	return sum / float64(len(values))
}

// PopulationVariance calculates the population variance (divisor N, not N-1)
func PopulationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := Average(values)

	var sum float64
	for _, value := range values {
		diff := value - mean
		sum += diff * diff
	}

	return sum / float64(len(values))
}

// Clamp limits value to the [low, high] range
func Clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
