package series

import (
	"errors"
	"math"
	"testing"
	"time"

	"weightlog/domain/core"
)

func TestFitTrend_ExactLinearData(t *testing.T) {
	// Perfectly linear data recovers the slope exactly: -0.5/day.
	start := core.DayOf(2021, time.January, 1)
	points := []Point{
		{Day: start, Value: 90},
		{Day: start.AddDays(10), Value: 85},
		{Day: start.AddDays(20), Value: 80},
		{Day: start.AddDays(30), Value: 75},
	}

	trend, err := FitTrend(points)
	if err != nil {
		t.Fatalf("FitTrend failed: %v", err)
	}

	if math.Abs(trend.Beta-(-0.5)) > 1e-9 {
		t.Errorf("Expected slope -0.5/day, got %v", trend.Beta)
	}
	if math.Abs(trend.SlopePerWeek()-(-3.5)) > 1e-9 {
		t.Errorf("Expected -3.5/week, got %v", trend.SlopePerWeek())
	}
	if got := trend.Eval(start.AddDays(40)); math.Abs(got-70) > 1e-9 {
		t.Errorf("Expected projection 70 at day 40, got %v", got)
	}
}

func TestFitTrend_InsufficientData(t *testing.T) {
	_, err := FitTrend([]Point{{Day: core.DayOf(2021, time.January, 1), Value: 90}})
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}

func TestTrend_Project(t *testing.T) {
	trend := Trend{Alpha: 0, Beta: 1}
	from := core.DayOf(2021, time.January, 1)
	to := from.AddDays(9)

	s, err := trend.Project(from, to)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if s.Length() != 10 {
		t.Fatalf("Expected 10 days, got %d", s.Length())
	}
	for i := 1; i < s.Length(); i++ {
		if math.Abs((s.Values[i]-s.Values[i-1])-1) > 1e-9 {
			t.Errorf("Expected unit slope between days %d and %d", i-1, i)
		}
	}

	if _, err := trend.Project(to, from); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for reversed range, got %v", err)
	}
}

func TestDailyChange(t *testing.T) {
	// Weight dropping 0.2 kg/day reads as +20 decagrams/day lost.
	points := []Point{
		{Day: core.DayOf(2021, time.March, 1), Value: 90},
		{Day: core.DayOf(2021, time.March, 6), Value: 89},
	}
	s, err := InterpolateDaily(points)
	if err != nil {
		t.Fatalf("InterpolateDaily failed: %v", err)
	}

	changes := DailyChange(s)
	if len(changes) != s.Length() {
		t.Fatalf("Expected %d change values, got %d", s.Length(), len(changes))
	}
	for i, c := range changes {
		if math.Abs(c-20) > 1e-9 {
			t.Errorf("Day %d: expected 20 dag/day, got %v", i, c)
		}
	}
}
