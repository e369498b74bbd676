// Package series transforms sparse dated samples into day-granularity time
// series suitable for trend analysis and charting.
package series

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"

	"weightlog/domain/core"
)

// Point is a single dated observation.
type Point struct {
	Day   core.Day
	Value float64
}

// DaySeries is a value per calendar day over a contiguous day grid.
// Observed marks grid days that carry a real sample rather than an
// interpolated or extrapolated value.
type DaySeries struct {
	Days     []core.Day
	Values   []float64
	Observed []bool
}

// Length returns the number of grid days.
func (s *DaySeries) Length() int {
	return len(s.Days)
}

// At returns the value for the given day, if it lies on the grid.
func (s *DaySeries) At(day core.Day) (float64, bool) {
	if len(s.Days) == 0 || day.Before(s.Days[0]) || day.After(s.Days[len(s.Days)-1]) {
		return 0, false
	}
	return s.Values[day.Sub(s.Days[0])], true
}

// sortedUnique orders a copy of the points by day and rejects duplicates.
func sortedUnique(points []Point) ([]Point, error) {
	ordered := make([]Point, len(points))
	copy(ordered, points)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Day.Before(ordered[j].Day)
	})
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Day.Equal(ordered[i-1].Day) {
			return nil, core.NewDuplicateDateError(ordered[i].Day.String())
		}
	}
	return ordered, nil
}

// InterpolateDaily produces one value per calendar day in [first, last] by
// linear interpolation between bracketing samples. Sample days pass through
// unchanged. Fewer than 2 points cannot bracket anything and fail with
// ErrInsufficientData.
func InterpolateDaily(points []Point) (*DaySeries, error) {
	ordered, err := sortedUnique(points)
	if err != nil {
		return nil, err
	}
	if len(ordered) < 2 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInsufficientData, len(ordered))
	}

	xs := make([]float64, len(ordered))
	ys := make([]float64, len(ordered))
	for i, p := range ordered {
		xs[i] = float64(p.Day.Number())
		ys[i] = p.Value
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("fit failed: %w", err)
	}

	first := ordered[0].Day
	last := ordered[len(ordered)-1].Day
	n := last.Sub(first) + 1

	out := &DaySeries{
		Days:     make([]core.Day, n),
		Values:   make([]float64, n),
		Observed: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		out.Days[i] = first.AddDays(i)
		out.Values[i] = pl.Predict(float64(out.Days[i].Number()))
	}
	// Exact passthrough at sample days, not a re-derived value.
	for _, p := range ordered {
		i := p.Day.Sub(first)
		out.Values[i] = p.Value
		out.Observed[i] = true
	}

	return out, nil
}

// Extrapolate continues the linear trend of the last two samples beyond the
// last known day, one value per day in (last, horizon]. The result is a
// separate series so renderers can style it apart from observed data.
func Extrapolate(points []Point, horizon core.Day) (*DaySeries, error) {
	ordered, err := sortedUnique(points)
	if err != nil {
		return nil, err
	}
	if len(ordered) < 2 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInsufficientData, len(ordered))
	}

	last := ordered[len(ordered)-1]
	prev := ordered[len(ordered)-2]
	if !horizon.After(last.Day) {
		return nil, fmt.Errorf("%w: horizon %s is not after last sample %s",
			core.ErrInvalidInput, horizon, last.Day)
	}

	// Same two-point slope formula as interpolation, with the synthetic
	// target day as d1.
	slope := (last.Value - prev.Value) / float64(last.Day.Sub(prev.Day))

	n := horizon.Sub(last.Day)
	out := &DaySeries{
		Days:     make([]core.Day, n),
		Values:   make([]float64, n),
		Observed: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		day := last.Day.AddDays(i + 1)
		out.Days[i] = day
		out.Values[i] = last.Value + slope*float64(day.Sub(last.Day))
	}

	return out, nil
}
