package app

import (
	"fmt"
	"log"
	"time"

	"weightlog/adapters/excel"
	"weightlog/adapters/series"
	"weightlog/adapters/yamlfile"
	"weightlog/domain/body"
	"weightlog/domain/core"
	"weightlog/internal/config"
	"weightlog/internal/profiling"
)

// trendHorizonDays is how far past the last sample the fitted trend lines
// are projected.
const trendHorizonDays = 100

// ChartService runs the full pipeline: load, interpolate, derive, render.
type ChartService struct {
	cfg config.Config
}

// ChartRequest defines one chart run.
type ChartRequest struct {
	After       core.Day // zero = keep all samples
	HorizonDays int      // >0 enables extrapolation past the last sample
}

// ChartResult describes what was rendered.
type ChartResult struct {
	OutPath      string
	GridDays     int
	Extrapolated int
	RuntimeMs    int64
}

// NewChartService creates a chart service.
func NewChartService(cfg config.Config) *ChartService {
	return &ChartService{cfg: cfg}
}

// Run executes the pipeline and writes the chart workbook.
func (s *ChartService) Run(req ChartRequest) (*ChartResult, error) {
	startTime := time.Now()

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	derived, err := loadDerived(s.cfg.DataPath, req.After)
	if err != nil {
		return nil, err
	}

	data := &excel.ChartData{
		Ages:        derived.Ages,
		Weight:      derived.Weight,
		Height:      derived.Height,
		BMI:         derived.BMI,
		DailyChange: series.DailyChange(derived.Weight),
	}

	last := derived.Weight.Days[derived.Weight.Length()-1]
	if req.HorizonDays > 0 {
		extra, err := series.Extrapolate(derived.WeightPoints, last.AddDays(req.HorizonDays))
		if err != nil {
			return nil, err
		}
		data.Extrapolated = extra
	}

	first := derived.Weight.Days[0]
	trendEnd := last.AddDays(trendHorizonDays)
	if data.WeightTrend, err = derived.WeightTrend.Project(first, trendEnd); err != nil {
		return nil, err
	}
	if data.BMITrend, err = derived.BMITrend.Project(first, trendEnd); err != nil {
		return nil, err
	}

	if err := excel.NewChartWriter(s.cfg.OutPath).Write(data); err != nil {
		return nil, err
	}

	result := &ChartResult{
		OutPath:   s.cfg.OutPath,
		GridDays:  derived.Weight.Length(),
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}
	if data.Extrapolated != nil {
		result.Extrapolated = data.Extrapolated.Length()
	}
	log.Printf("[ChartService] Rendered %d day rows to %s in %dms", result.GridDays, result.OutPath, result.RuntimeMs)
	return result, nil
}

// derivedSeries is everything computable from the loaded person.
type derivedSeries struct {
	Person       *body.Person
	WeightPoints []series.Point
	Weight       *series.DaySeries
	Height       *series.DaySeries
	BMI          []float64
	Ages         []float64
	WeightTrend  series.Trend
	BMITrend     series.Trend

	ObservedWeight []float64
	ObservedBMI    []float64
}

// loadDerived loads the data file and computes every per-day series.
func loadDerived(dataPath string, after core.Day) (*derivedSeries, error) {
	person, err := yamlfile.NewReader(dataPath).Read()
	if err != nil {
		return nil, err
	}
	if !after.IsZero() {
		person = person.After(after)
		log.Printf("[ChartService] Keeping %d samples on/after %s", len(person.Samples), after)
	}

	weightPoints := make([]series.Point, 0, len(person.Samples))
	heightPoints := make([]series.Point, 0, len(person.Samples))
	for _, sample := range person.Samples {
		weightPoints = append(weightPoints, series.Point{Day: sample.Date, Value: sample.WeightKg})
		if sample.HasHeight() {
			heightPoints = append(heightPoints, series.Point{Day: sample.Date, Value: sample.HeightCm})
		}
	}
	if len(heightPoints) == 0 {
		return nil, fmt.Errorf("%w: no sample includes a height, cannot derive BMI", core.ErrInvalidInput)
	}

	weight, err := series.InterpolateDaily(weightPoints)
	if err != nil {
		return nil, err
	}

	heightAt, height, err := heightLookup(heightPoints, weight)
	if err != nil {
		return nil, err
	}

	bmi := make([]float64, weight.Length())
	ages := make([]float64, weight.Length())
	for i, day := range weight.Days {
		bmi[i], err = body.BMI(weight.Values[i], heightAt(day))
		if err != nil {
			return nil, err
		}
		ages[i] = person.AgeYears(day)
	}

	// Trends fit against observed samples only, never interpolated fill.
	observedWeight := make([]float64, 0, len(weightPoints))
	observedBMI := make([]float64, 0, len(weightPoints))
	bmiPoints := make([]series.Point, 0, len(weightPoints))
	for _, p := range weightPoints {
		observedWeight = append(observedWeight, p.Value)
		v, err := body.BMI(p.Value, heightAt(p.Day))
		if err != nil {
			return nil, err
		}
		observedBMI = append(observedBMI, v)
		bmiPoints = append(bmiPoints, series.Point{Day: p.Day, Value: v})
	}

	weightTrend, err := series.FitTrend(weightPoints)
	if err != nil {
		return nil, err
	}
	bmiTrend, err := series.FitTrend(bmiPoints)
	if err != nil {
		return nil, err
	}

	return &derivedSeries{
		Person:         person,
		WeightPoints:   weightPoints,
		Weight:         weight,
		Height:         height,
		BMI:            bmi,
		Ages:           ages,
		WeightTrend:    weightTrend,
		BMITrend:       bmiTrend,
		ObservedWeight: observedWeight,
		ObservedBMI:    observedBMI,
	}, nil
}

// heightLookup returns a per-day height function plus the interpolated height
// series for rendering. A single height sample acts as a constant; with two
// or more, days outside the height sample range clamp to the nearest
// endpoint rather than extrapolating silently.
func heightLookup(heightPoints []series.Point, grid *series.DaySeries) (func(core.Day) float64, *series.DaySeries, error) {
	if len(heightPoints) == 1 {
		constant := heightPoints[0].Value
		height := &series.DaySeries{
			Days:     grid.Days,
			Values:   make([]float64, grid.Length()),
			Observed: make([]bool, grid.Length()),
		}
		for i := range height.Values {
			height.Values[i] = constant
		}
		return func(core.Day) float64 { return constant }, height, nil
	}

	interpolated, err := series.InterpolateDaily(heightPoints)
	if err != nil {
		return nil, nil, err
	}

	at := func(day core.Day) float64 {
		if v, ok := interpolated.At(day); ok {
			return v
		}
		if day.Before(interpolated.Days[0]) {
			return interpolated.Values[0]
		}
		return interpolated.Values[interpolated.Length()-1]
	}

	height := &series.DaySeries{
		Days:     grid.Days,
		Values:   make([]float64, grid.Length()),
		Observed: make([]bool, grid.Length()),
	}
	for i, day := range grid.Days {
		height.Values[i] = at(day)
	}
	return at, height, nil
}

// summaries computes the descriptive statistics for the summary report.
func (d *derivedSeries) summaries() (weight, bmi profiling.Summary, err error) {
	weight, err = profiling.Summarize(d.ObservedWeight)
	if err != nil {
		return
	}
	bmi, err = profiling.Summarize(d.ObservedBMI)
	return
}
