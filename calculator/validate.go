package calculator

import (
	"fmt"
	"math"

	"mortgage-calc/domain"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(name string, v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, name)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if !finite(v) || v < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, name)
	}
	return nil
}

func termYears(name string, years int) error {
	if years <= 0 {
		return fmt.Errorf("%w: %s must be at least one year", domain.ErrInvalidInput, name)
	}
	if years > MaxTermYears {
		return fmt.Errorf("%w: %s exceeds %d years", domain.ErrInvalidInput, name, MaxTermYears)
	}
	return nil
}
