package series

import (
	"errors"
	"math"
	"testing"
	"time"

	"weightlog/domain/core"
)

func TestInterpolateDaily_BoundaryExactness(t *testing.T) {
	// Sample days must pass through unchanged, not re-derived.
	points := []Point{
		{Day: core.DayOf(2020, time.January, 1), Value: 70.3},
		{Day: core.DayOf(2020, time.January, 11), Value: 80.7},
	}

	s, err := InterpolateDaily(points)
	if err != nil {
		t.Fatalf("InterpolateDaily failed: %v", err)
	}

	if s.Values[0] != 70.3 {
		t.Errorf("Expected exact 70.3 at first sample, got %v", s.Values[0])
	}
	if s.Values[s.Length()-1] != 80.7 {
		t.Errorf("Expected exact 80.7 at last sample, got %v", s.Values[s.Length()-1])
	}
	if !s.Observed[0] || !s.Observed[s.Length()-1] {
		t.Error("Sample days should be marked observed")
	}
}

func TestInterpolateDaily_Midpoint(t *testing.T) {
	// 5 of 10 days between 70 and 80 is exactly 75.
	points := []Point{
		{Day: core.DayOf(2020, time.January, 1), Value: 70},
		{Day: core.DayOf(2020, time.January, 11), Value: 80},
	}

	s, err := InterpolateDaily(points)
	if err != nil {
		t.Fatalf("InterpolateDaily failed: %v", err)
	}

	got, ok := s.At(core.DayOf(2020, time.January, 6))
	if !ok {
		t.Fatal("2020-01-06 should be on the grid")
	}
	if math.Abs(got-75) > 1e-9 {
		t.Errorf("Expected 75, got %v", got)
	}
	if s.Length() != 11 {
		t.Errorf("Expected 11 grid days, got %d", s.Length())
	}
}

func TestInterpolateDaily_MonotonicBetweenSamples(t *testing.T) {
	points := []Point{
		{Day: core.DayOf(2021, time.June, 1), Value: 90},
		{Day: core.DayOf(2021, time.June, 18), Value: 85.5},
	}

	s, err := InterpolateDaily(points)
	if err != nil {
		t.Fatalf("InterpolateDaily failed: %v", err)
	}

	for i := 1; i < s.Length(); i++ {
		if s.Values[i] > s.Values[i-1] {
			t.Fatalf("Series overshoots at %s: %v -> %v", s.Days[i], s.Values[i-1], s.Values[i])
		}
	}
	for _, v := range s.Values {
		if v < 85.5 || v > 90 {
			t.Fatalf("Value %v outside sample bounds [85.5, 90]", v)
		}
	}
}

func TestInterpolateDaily_UnsortedInput(t *testing.T) {
	points := []Point{
		{Day: core.DayOf(2020, time.January, 11), Value: 80},
		{Day: core.DayOf(2020, time.January, 1), Value: 70},
		{Day: core.DayOf(2020, time.January, 6), Value: 74},
	}

	s, err := InterpolateDaily(points)
	if err != nil {
		t.Fatalf("InterpolateDaily failed: %v", err)
	}

	got, _ := s.At(core.DayOf(2020, time.January, 6))
	if got != 74 {
		t.Errorf("Expected exact passthrough 74 for middle sample, got %v", got)
	}
}

func TestInterpolateDaily_SingleSample(t *testing.T) {
	points := []Point{{Day: core.DayOf(2020, time.January, 1), Value: 70}}

	_, err := InterpolateDaily(points)
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}

func TestInterpolateDaily_DuplicateDates(t *testing.T) {
	// Duplicates must fail validation, never reach a zero day span.
	points := []Point{
		{Day: core.DayOf(2020, time.January, 1), Value: 70},
		{Day: core.DayOf(2020, time.January, 1), Value: 71},
		{Day: core.DayOf(2020, time.January, 11), Value: 80},
	}

	_, err := InterpolateDaily(points)
	if !errors.Is(err, core.ErrDuplicateDate) {
		t.Errorf("Expected ErrDuplicateDate, got %v", err)
	}
}

func TestExtrapolate_ContinuesLastSlope(t *testing.T) {
	// Slope of the last two samples is +1/day; earlier samples must not
	// influence the projection.
	points := []Point{
		{Day: core.DayOf(2020, time.January, 1), Value: 100},
		{Day: core.DayOf(2020, time.January, 11), Value: 70},
		{Day: core.DayOf(2020, time.January, 21), Value: 80},
	}

	s, err := Extrapolate(points, core.DayOf(2020, time.January, 26))
	if err != nil {
		t.Fatalf("Extrapolate failed: %v", err)
	}

	if s.Length() != 5 {
		t.Fatalf("Expected 5 extrapolated days, got %d", s.Length())
	}
	if !s.Days[0].Equal(core.DayOf(2020, time.January, 22)) {
		t.Errorf("Extrapolation should start the day after the last sample, got %s", s.Days[0])
	}
	for i, want := range []float64{81, 82, 83, 84, 85} {
		if math.Abs(s.Values[i]-want) > 1e-9 {
			t.Errorf("Day %s: expected %v, got %v", s.Days[i], want, s.Values[i])
		}
	}
	for _, obs := range s.Observed {
		if obs {
			t.Error("Extrapolated points must not be marked observed")
		}
	}
}

func TestExtrapolate_HorizonNotAfterLastSample(t *testing.T) {
	points := []Point{
		{Day: core.DayOf(2020, time.January, 1), Value: 70},
		{Day: core.DayOf(2020, time.January, 11), Value: 80},
	}

	_, err := Extrapolate(points, core.DayOf(2020, time.January, 11))
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
