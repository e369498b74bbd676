package body

import (
	"fmt"

	"weightlog/domain/core"
)

// BMI band boundaries, from underweight through morbid obesity.
var BMIBounds = []float64{15, 18.5, 25, 30, 40, 50}

// BMI computes weightKg / (heightCm/100)^2. Pure function, no state.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("%w: weight %.2f kg must be positive", core.ErrInvalidInput, weightKg)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("%w: height %.2f cm must be positive", core.ErrInvalidInput, heightCm)
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}
