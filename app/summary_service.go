package app

import (
	"weightlog/domain/core"
	"weightlog/internal/config"
	"weightlog/internal/report"
)

// SummaryService renders the textual report instead of a chart.
type SummaryService struct {
	cfg config.Config
}

// SummaryRequest defines one report run.
type SummaryRequest struct {
	After core.Day // zero = keep all samples
	HTML  bool     // render HTML instead of Markdown
}

// NewSummaryService creates a summary service.
func NewSummaryService(cfg config.Config) *SummaryService {
	return &SummaryService{cfg: cfg}
}

// Run loads the data and renders the summary report.
func (s *SummaryService) Run(req SummaryRequest) ([]byte, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	derived, err := loadDerived(s.cfg.DataPath, req.After)
	if err != nil {
		return nil, err
	}

	weightSummary, bmiSummary, err := derived.summaries()
	if err != nil {
		return nil, err
	}

	last := derived.Weight.Days[derived.Weight.Length()-1]
	md := report.Markdown(report.Data{
		DataPath:    s.cfg.DataPath,
		FirstDate:   derived.Weight.Days[0].String(),
		LastDate:    last.String(),
		AgeAtLast:   derived.Person.AgeYears(last),
		Weight:      weightSummary,
		BMI:         bmiSummary,
		WeightSlope: derived.WeightTrend.SlopePerWeek(),
		BMISlope:    derived.BMITrend.SlopePerWeek(),
	})

	if req.HTML {
		return report.HTML(md), nil
	}
	return []byte(md), nil
}
