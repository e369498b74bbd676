// Package excel renders the day series as a native line chart in an .xlsx
// workbook.
package excel

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"weightlog/adapters/series"
	"weightlog/domain/body"
	"weightlog/domain/core"
)

const sheetName = "Data"

// ChartData holds every series the chart draws. Weight, Height, BMI,
// DailyChange and Ages share the interpolation grid; Extrapolated and the
// trend projections may extend past it and may be nil.
type ChartData struct {
	Ages         []float64
	Weight       *series.DaySeries
	Height       *series.DaySeries
	BMI          []float64
	DailyChange  []float64
	Extrapolated *series.DaySeries
	WeightTrend  *series.DaySeries
	BMITrend     *series.DaySeries
}

// Column layout of the data sheet.
var headers = []string{
	"Date",
	"Age (years)",
	"Weight (kg)",
	"Height (cm)",
	"BMI",
	"-dW/d (dag/day)",
	"Weight (projected)",
	"Weight trend",
	"BMI trend",
	"BMI 15",
	"BMI 18.5",
	"BMI 25",
	"BMI 30",
	"BMI 40",
	"BMI 50",
}

// ChartWriter writes the workbook to disk.
type ChartWriter struct {
	path string
}

// NewChartWriter creates a writer targeting the given .xlsx path.
func NewChartWriter(path string) *ChartWriter {
	return &ChartWriter{path: path}
}

// Write lays the series out on the data sheet and attaches a line chart.
func (w *ChartWriter) Write(data *ChartData) error {
	if data.Weight == nil || data.Weight.Length() == 0 {
		return fmt.Errorf("no weight series to render")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to prepare sheet: %w", err)
	}

	rows, err := w.writeRows(f, data)
	if err != nil {
		return err
	}
	if err := w.addChart(f, rows); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Printf("[ChartWriter] Wrote %s (%d day rows)", w.path, rows)
	return nil
}

// writeRows fills the data sheet and returns the number of day rows.
func (w *ChartWriter) writeRows(f *excelize.File, data *ChartData) (int, error) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return 0, fmt.Errorf("failed to write header: %w", err)
		}
	}

	start := data.Weight.Days[0]
	span := data.Weight.Length()
	for _, s := range []*series.DaySeries{data.Extrapolated, data.WeightTrend, data.BMITrend} {
		if s != nil && s.Length() > 0 {
			if end := s.Days[s.Length()-1].Sub(start) + 1; end > span {
				span = end
			}
		}
	}

	set := func(col, row int, v interface{}) error {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		return f.SetCellValue(sheetName, cell, v)
	}

	for i := 0; i < span; i++ {
		day := start.AddDays(i)
		row := i + 2

		if err := set(1, row, day.String()); err != nil {
			return 0, err
		}
		if i < len(data.Ages) {
			if err := set(2, row, data.Ages[i]); err != nil {
				return 0, err
			}
		}
		if i < data.Weight.Length() {
			if err := set(3, row, data.Weight.Values[i]); err != nil {
				return 0, err
			}
		}
		if data.Height != nil && i < data.Height.Length() {
			if err := set(4, row, data.Height.Values[i]); err != nil {
				return 0, err
			}
		}
		if i < len(data.BMI) {
			if err := set(5, row, data.BMI[i]); err != nil {
				return 0, err
			}
		}
		if i < len(data.DailyChange) {
			if err := set(6, row, data.DailyChange[i]); err != nil {
				return 0, err
			}
		}
		if v, ok := seriesAt(data.Extrapolated, day); ok {
			if err := set(7, row, v); err != nil {
				return 0, err
			}
		}
		if v, ok := seriesAt(data.WeightTrend, day); ok {
			if err := set(8, row, v); err != nil {
				return 0, err
			}
		}
		if v, ok := seriesAt(data.BMITrend, day); ok {
			if err := set(9, row, v); err != nil {
				return 0, err
			}
		}
		for j, bound := range body.BMIBounds {
			if err := set(10+j, row, bound); err != nil {
				return 0, err
			}
		}
	}

	return span, nil
}

func seriesAt(s *series.DaySeries, day core.Day) (float64, bool) {
	if s == nil {
		return 0, false
	}
	return s.At(day)
}

func (w *ChartWriter) addChart(f *excelize.File, rows int) error {
	chartSeries := make([]excelize.ChartSeries, 0, len(headers)-2)
	for col := 3; col <= len(headers); col++ {
		nameCell, _ := excelize.CoordinatesToCellName(col, 1, true)
		firstCell, _ := excelize.CoordinatesToCellName(col, 2, true)
		lastCell, _ := excelize.CoordinatesToCellName(col, rows+1, true)
		chartSeries = append(chartSeries, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!%s", sheetName, nameCell),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheetName, rows+1),
			Values:     fmt.Sprintf("%s!%s:%s", sheetName, firstCell, lastCell),
		})
	}

	return f.AddChart(sheetName, "Q2", &excelize.Chart{
		Type:   excelize.Line,
		Series: chartSeries,
		Title:  []excelize.RichTextRun{{Text: "Weight, height and BMI by day"}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{
			Width:  1280,
			Height: 640,
		},
		YAxis: excelize.ChartAxis{MajorGridLines: true},
	})
}
