package stats

// Summary holds descriptive statistics of one recorded signal column.
type Summary struct {
	Min      float64
	Max      float64
	Mean     float64
	Crossing int
}

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func Extrema(data []float64) (min, max float64) {
	if len(data) == 0 {
		return 0, 0
	}
	min, max = data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// ZeroCrossings counts sign changes, skipping exact zeros so a sample sitting
// on the axis is not counted twice.
func ZeroCrossings(data []float64) int {
	crossings := 0
	prev := 0.0
	havePrev := false
	for _, v := range data {
		if v == 0 {
			continue
		}
		if havePrev && (prev > 0) != (v > 0) {
			crossings++
		}
		prev = v
		havePrev = true
	}
	return crossings
}

func Summarize(data []float64) Summary {
	min, max := Extrema(data)
	return Summary{
		Min:      min,
		Max:      max,
		Mean:     Mean(data),
		Crossing: ZeroCrossings(data),
	}
}
