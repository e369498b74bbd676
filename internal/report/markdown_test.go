package report

import (
	"strings"
	"testing"

	"weightlog/internal/profiling"
)

func testData() Data {
	return Data{
		DataPath:    "data.yaml",
		FirstDate:   "2021-01-01",
		LastDate:    "2021-03-01",
		AgeAtLast:   30.7,
		Weight:      profiling.Summary{Count: 5, Mean: 91.2, Median: 91, Min: 89, Max: 95, StdDev: 2.1},
		BMI:         profiling.Summary{Count: 5, Mean: 27.2, Median: 27.1, Min: 26.5, Max: 28.3, StdDev: 0.6},
		WeightSlope: -0.42,
		BMISlope:    -0.12,
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(testData())

	for _, want := range []string{
		"# Weight report",
		"2021-01-01",
		"age 30.7",
		"| Weight (kg) | 5 | 91.2",
		"Weight trend: -0.42 kg/week",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q:\n%s", want, md)
		}
	}
}

func TestHTML(t *testing.T) {
	out := string(HTML(Markdown(testData())))

	if !strings.Contains(out, "<h1") {
		t.Errorf("Expected an h1 heading, got:\n%s", out)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("Expected a rendered table, got:\n%s", out)
	}
}
