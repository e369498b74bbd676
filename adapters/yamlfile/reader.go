// Package yamlfile loads the measurement data file.
package yamlfile

import (
	"fmt"
	"log"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"weightlog/domain/body"
	"weightlog/domain/core"
	"weightlog/internal/dates"
)

// Scalar captures any YAML scalar as its raw text, so `weight: 89.5` and
// `weight: 89.5 kg` both arrive as strings for the unit parser.
type Scalar string

func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", value.Line)
	}
	*s = Scalar(value.Value)
	return nil
}

// Document mirrors the data file layout: a birth date and a list of sample
// records with human-entered date, weight and height strings.
type Document struct {
	DOB     Scalar   `yaml:"dob"`
	Samples []Record `yaml:"samples"`
}

// Record is a single raw sample entry. Height is optional.
type Record struct {
	Date   Scalar `yaml:"date"`
	Weight Scalar `yaml:"weight"`
	Height Scalar `yaml:"height"`
}

// Validate validates the document structure before any parsing happens.
func (d *Document) Validate() error {
	if err := validation.ValidateStruct(d,
		validation.Field(&d.DOB, validation.Required),
		validation.Field(&d.Samples, validation.Required),
	); err != nil {
		return err
	}
	for i, r := range d.Samples {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return nil
}

// Validate validates a single record.
func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required),
		validation.Field(&r.Weight, validation.Required),
	)
}

// Reader loads and parses a YAML data file into the domain model.
type Reader struct {
	path string
}

// NewReader creates a reader for the given data file.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Read loads the file, validates it, and normalizes every record into the
// domain model. Any malformed record is fatal; there is no partial result.
func (r *Reader) Read() (*body.Person, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("data file not found: %s", r.path)
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("malformed data file %s: %w", r.path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid data file %s: %w", r.path, err)
	}
	log.Printf("[DataReader] Loaded %s (%d samples)", r.path, len(doc.Samples))

	birth, err := dates.Parse(string(doc.DOB))
	if err != nil {
		return nil, fmt.Errorf("birth date: %w", err)
	}

	samples := make([]body.Sample, 0, len(doc.Samples))
	heights := 0
	for i, rec := range doc.Samples {
		sample, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if sample.HasHeight() {
			heights++
		}
		samples = append(samples, sample)
	}
	if heights == 0 {
		return nil, fmt.Errorf("%w: no sample includes a height, cannot derive BMI", core.ErrInvalidInput)
	}

	return body.NewPerson(birth, samples)
}

func parseRecord(rec Record) (body.Sample, error) {
	date, err := dates.Parse(string(rec.Date))
	if err != nil {
		return body.Sample{}, err
	}

	weight, err := body.ParseWeight(string(rec.Weight))
	if err != nil {
		return body.Sample{}, err
	}

	height := 0.0
	if rec.Height != "" {
		height, err = body.ParseHeight(string(rec.Height))
		if err != nil {
			return body.Sample{}, err
		}
	}

	return body.Sample{Date: date, WeightKg: weight, HeightCm: height}, nil
}
