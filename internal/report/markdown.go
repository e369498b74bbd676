// Package report renders the summary report.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"weightlog/internal/profiling"
)

// Data is everything the summary report needs.
type Data struct {
	DataPath    string
	FirstDate   string
	LastDate    string
	AgeAtLast   float64
	Weight      profiling.Summary
	BMI         profiling.Summary
	WeightSlope float64 // kg per week
	BMISlope    float64 // BMI points per week
}

// Markdown renders the report as Markdown text.
func Markdown(d Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weight report\n\n")
	fmt.Fprintf(&b, "Source: `%s`, samples from %s to %s (age %.1f).\n\n", d.DataPath, d.FirstDate, d.LastDate, d.AgeAtLast)

	fmt.Fprintf(&b, "| Series | Count | Mean | Median | Min | Max | Std dev |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| Weight (kg) | %d | %.1f | %.1f | %.1f | %.1f | %.2f |\n",
		d.Weight.Count, d.Weight.Mean, d.Weight.Median, d.Weight.Min, d.Weight.Max, d.Weight.StdDev)
	fmt.Fprintf(&b, "| BMI | %d | %.1f | %.1f | %.1f | %.1f | %.2f |\n\n",
		d.BMI.Count, d.BMI.Mean, d.BMI.Median, d.BMI.Min, d.BMI.Max, d.BMI.StdDev)

	fmt.Fprintf(&b, "Weight trend: %+.2f kg/week. BMI trend: %+.2f points/week.\n", d.WeightSlope, d.BMISlope)

	return b.String()
}

// HTML converts the Markdown report into a standalone HTML fragment.
func HTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, r)
}
