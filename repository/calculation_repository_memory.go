package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mortgage-calc/domain"
)

const defaultHistorySize = 1000

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository. It keeps only the most recent records.
type CalculationRepositoryMemory struct {
	mu      sync.RWMutex
	data    []domain.CalculationRecord
	maxSize int
	now     func() time.Time
}

// NewCalculationRepositoryMemory creates a new in-memory history holding at
// most maxSize records. A non-positive maxSize uses the default.
func NewCalculationRepositoryMemory(maxSize int) *CalculationRepositoryMemory {
	if maxSize <= 0 {
		maxSize = defaultHistorySize
	}
	return &CalculationRepositoryMemory{
		data:    []domain.CalculationRecord{},
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Save stores the record, assigning an ID and timestamp when missing.
func (r *CalculationRepositoryMemory) Save(
	ctx context.Context,
	record domain.CalculationRecord,
) (domain.CalculationRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.CalculationRecord{}, err
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if over := len(r.data) - r.maxSize; over > 0 {
		r.data = append(r.data[:0:0], r.data[over:]...)
	}
	return record, nil
}

// Recent returns up to limit records, newest first.
func (r *CalculationRepositoryMemory) Recent(
	ctx context.Context,
	limit int,
) ([]domain.CalculationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.CalculationRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
