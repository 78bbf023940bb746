package repository

import (
	"context"

	"mortgage-calc/domain"
)

// CalculationRepository keeps a history of performed calculations.
type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) (domain.CalculationRecord, error)
	Recent(ctx context.Context, limit int) ([]domain.CalculationRecord, error)
}
