// Package body defines the measurement domain types.
package body

import (
	"math"
	"sort"

	"weightlog/domain/core"
)

// Sample is a single dated measurement. HeightCm is 0 when the record did not
// include a height.
type Sample struct {
	Date     core.Day
	WeightKg float64
	HeightCm float64
}

// HasHeight reports whether the sample carries a height measurement.
func (s Sample) HasHeight() bool {
	return s.HeightCm > 0
}

// Person is the fully parsed input: a birth date and samples ordered by date
// with unique dates. Construct via NewPerson so the invariants hold.
type Person struct {
	BirthDate core.Day
	Samples   []Sample
}

// NewPerson validates and orders the samples. Duplicate dates are rejected
// here, before any interpolation can divide by a zero day span.
func NewPerson(birth core.Day, samples []Sample) (*Person, error) {
	ordered := make([]Sample, len(samples))
	copy(ordered, samples)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	for i := 1; i < len(ordered); i++ {
		if ordered[i].Date.Equal(ordered[i-1].Date) {
			return nil, core.NewDuplicateDateError(ordered[i].Date.String())
		}
	}

	for _, s := range ordered {
		if s.WeightKg <= 0 {
			return nil, core.NewValidationError("weight", "must be positive")
		}
		if s.HeightCm < 0 {
			return nil, core.NewValidationError("height", "must be positive")
		}
	}

	return &Person{BirthDate: birth, Samples: ordered}, nil
}

// After returns a copy keeping only samples on or after the given day.
func (p *Person) After(day core.Day) *Person {
	kept := make([]Sample, 0, len(p.Samples))
	for _, s := range p.Samples {
		if !s.Date.Before(day) {
			kept = append(kept, s)
		}
	}
	return &Person{BirthDate: p.BirthDate, Samples: kept}
}

const daysPerYear = 365.2425

// AgeYears returns the person's age at the given day in years, truncated to
// one decimal place.
func (p *Person) AgeYears(day core.Day) float64 {
	years := float64(day.Sub(p.BirthDate)) / daysPerYear
	return math.Trunc(years*10) / 10
}
