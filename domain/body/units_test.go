package body

import (
	"errors"
	"math"
	"testing"

	"weightlog/domain/core"
)

func TestParseWeight(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"72.5 kg", 72.5},
		{"72.5kg", 72.5},
		{"80", 80},
		{".5 kg", 0.5},
		{"160 lb", 160 * 0.453592},
		{"160lbs", 160 * 0.453592},
	}

	for _, tc := range cases {
		got, err := ParseWeight(tc.raw)
		if err != nil {
			t.Errorf("ParseWeight(%q) failed: %v", tc.raw, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ParseWeight(%q) = %.4f, want %.4f", tc.raw, got, tc.want)
		}
	}
}

func TestParseWeight_BadUnit(t *testing.T) {
	for _, raw := range []string{"72 stone", "heavy", "", "kg 72"} {
		if _, err := ParseWeight(raw); !errors.Is(err, core.ErrBadUnit) {
			t.Errorf("ParseWeight(%q): expected ErrBadUnit, got %v", raw, err)
		}
	}
}

func TestParseHeight(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"175 cm", 175},
		{"175cm", 175},
		{"175", 175},
		{"1.75 m", 175},
		{"69 in", 69 * 2.54},
		{"5ft 9in", 5*30.48 + 9*2.54},
		{"5 feet 9 inches", 5*30.48 + 9*2.54},
		{"5ft9", 5*30.48 + 9*2.54},
		{"6ft", 6 * 30.48},
	}

	for _, tc := range cases {
		got, err := ParseHeight(tc.raw)
		if err != nil {
			t.Errorf("ParseHeight(%q) failed: %v", tc.raw, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ParseHeight(%q) = %.4f, want %.4f", tc.raw, got, tc.want)
		}
	}
}

func TestParseHeight_BadUnit(t *testing.T) {
	for _, raw := range []string{"175 furlongs", "tall", ""} {
		if _, err := ParseHeight(raw); !errors.Is(err, core.ErrBadUnit) {
			t.Errorf("ParseHeight(%q): expected ErrBadUnit, got %v", raw, err)
		}
	}
}
