package series

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"weightlog/domain/core"
)

// Trend is a degree-1 least-squares fit of observations against day number.
type Trend struct {
	Alpha float64 // intercept at day number 0
	Beta  float64 // slope per day
}

// FitTrend fits a line through the observed points. At least two points on
// distinct days are required.
func FitTrend(points []Point) (Trend, error) {
	ordered, err := sortedUnique(points)
	if err != nil {
		return Trend{}, err
	}
	if len(ordered) < 2 {
		return Trend{}, fmt.Errorf("%w: got %d", core.ErrInsufficientData, len(ordered))
	}

	xs := make([]float64, len(ordered))
	ys := make([]float64, len(ordered))
	for i, p := range ordered {
		xs[i] = float64(p.Day.Number())
		ys[i] = p.Value
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Trend{Alpha: alpha, Beta: beta}, nil
}

// Eval returns the fitted value at the given day.
func (t Trend) Eval(day core.Day) float64 {
	return t.Alpha + t.Beta*float64(day.Number())
}

// SlopePerWeek returns the fitted change over seven days, the number people
// actually reason about.
func (t Trend) SlopePerWeek() float64 {
	return t.Beta * 7
}

// Project evaluates the trend over every day in [from, to].
func (t Trend) Project(from, to core.Day) (*DaySeries, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: projection range %s..%s", core.ErrInvalidInput, from, to)
	}
	n := to.Sub(from) + 1
	out := &DaySeries{
		Days:     make([]core.Day, n),
		Values:   make([]float64, n),
		Observed: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		out.Days[i] = from.AddDays(i)
		out.Values[i] = t.Eval(out.Days[i])
	}
	return out, nil
}

// DailyChange computes -dW/d over an interpolated weight series, scaled to
// decagrams per day. The last difference is repeated so the result spans the
// full grid.
func DailyChange(s *DaySeries) []float64 {
	n := s.Length()
	if n < 2 {
		return make([]float64, n)
	}
	out := make([]float64, n)
	for i := 0; i < n-1; i++ {
		out[i] = -(s.Values[i+1] - s.Values[i]) * 100
	}
	out[n-1] = out[n-2]
	return out
}
