package body

import (
	"regexp"
	"strconv"
	"strings"

	"weightlog/domain/core"
)

// Measurement records are human-entered strings like "72.5 kg", "160 lb",
// "175cm" or "5ft 9in". Everything normalizes to kg / cm here so the rest of
// the pipeline only sees metric floats.

const (
	kgPerPound = 0.453592
	cmPerFoot  = 30.48
	cmPerInch  = 2.54
)

var (
	unitPattern   = regexp.MustCompile(`^\s*(\d+(?:\.\d*)?|\.\d+)\s*([A-Za-z]*)\s*$`)
	feetInPattern = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d*)?)\s*(?:f|ft|foot|feet)\s*(\d+(?:\.\d*)?)?\s*(?:i|in|inch|inches|inchs)?\s*$`)
)

// ParseWeight parses a weight record into kilograms. A bare number is taken
// as kg.
func ParseWeight(raw string) (float64, error) {
	m := unitPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, core.NewBadUnitError("weight", raw)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, core.NewBadUnitError("weight", raw)
	}

	switch strings.ToLower(m[2]) {
	case "", "kg", "kgs", "kilogram", "kilograms":
		return value, nil
	case "lb", "lbs", "pound", "pounds":
		return value * kgPerPound, nil
	default:
		return 0, core.NewBadUnitError("weight", raw)
	}
}

// ParseHeight parses a height record into centimeters. A bare number is taken
// as cm; feet-and-inches forms like "5ft 9in" or "5 feet 9" are accepted.
func ParseHeight(raw string) (float64, error) {
	if m := unitPattern.FindStringSubmatch(raw); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, core.NewBadUnitError("height", raw)
		}
		switch strings.ToLower(m[2]) {
		case "", "cm", "cms", "centimeter", "centimeters":
			return value, nil
		case "m", "meter", "meters":
			return value * 100, nil
		case "in", "inch", "inches":
			return value * cmPerInch, nil
		}
		// "5ft9" style strings also match unitPattern; fall through.
	}

	if m := feetInPattern.FindStringSubmatch(raw); m != nil {
		feet, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, core.NewBadUnitError("height", raw)
		}
		inches := 0.0
		if m[2] != "" {
			inches, err = strconv.ParseFloat(m[2], 64)
			if err != nil {
				return 0, core.NewBadUnitError("height", raw)
			}
		}
		return feet*cmPerFoot + inches*cmPerInch, nil
	}

	return 0, core.NewBadUnitError("height", raw)
}
