// Package dates implements the date parsing contract for human-entered date
// strings: an explicit ordered format list tried first, then a
// natural-language fallback. Ambiguous numeric dates resolve day-month-year.
package dates

import (
	"time"

	"github.com/araddon/dateparse"

	"weightlog/domain/core"
)

// layouts is the documented format list, tried in order before any fallback.
var layouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2006/01/02",
}

// Parse turns a human-entered date string into a Day. The explicit layout
// list keeps common formats reproducible; anything else goes through
// dateparse with day-before-month preference.
func Parse(raw string) (core.Day, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return core.NewDay(t), nil
		}
	}

	t, err := dateparse.ParseAny(raw, dateparse.PreferMonthFirst(false))
	if err != nil {
		return core.Day{}, core.NewUnparsableDateError(raw)
	}
	return core.NewDay(t), nil
}
