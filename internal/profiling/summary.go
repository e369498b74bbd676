// Package profiling computes summary statistics over observed measurements.
package profiling

import (
	"github.com/montanaflynn/stats"
)

// Summary holds the descriptive statistics for one measurement series.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summarize computes descriptive statistics over the given values.
func Summarize(data []float64) (Summary, error) {
	summary := Summary{Count: len(data)}
	if len(data) == 0 {
		return summary, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.Median = median
	summary.Min = min
	summary.Max = max
	summary.StdDev = stdDev
	return summary, nil
}
