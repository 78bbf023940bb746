package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mortgage-calc/domain"
)

func TestCalculationRepositoryMemory_SaveAssignsIDAndTime(t *testing.T) {
	repo := NewCalculationRepositoryMemory(10)

	saved, err := repo.Save(context.Background(), domain.CalculationRecord{Kind: "amortization"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Errorf("expected an ID to be assigned")
	}
	if saved.CreatedAt.IsZero() {
		t.Errorf("expected a timestamp to be assigned")
	}
}

func TestCalculationRepositoryMemory_RecentNewestFirst(t *testing.T) {
	repo := NewCalculationRepositoryMemory(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := repo.Save(ctx, domain.CalculationRecord{Kind: fmt.Sprintf("k%d", i)}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	all, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected history trimmed to 3, got %d", len(all))
	}
	want := []string{"k4", "k3", "k2"}
	for i, rec := range all {
		if rec.Kind != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], rec.Kind)
		}
	}

	two, _ := repo.Recent(ctx, 2)
	if len(two) != 2 || two[0].Kind != "k4" {
		t.Errorf("expected the two newest records, got %+v", two)
	}
}

func TestCalculationRepositoryMemory_CancelledContext(t *testing.T) {
	repo := NewCalculationRepositoryMemory(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Save(ctx, domain.CalculationRecord{}); err == nil {
		t.Errorf("expected error for cancelled context")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	if err := cache.Set(ctx, "short", "a", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Set(ctx, "forever", "b", 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	if v, ok := cache.Get(ctx, "short"); !ok || v != "a" {
		t.Errorf("expected hit before expiry, got %q %v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get(ctx, "short"); ok {
		t.Errorf("expected entry to expire")
	}
	if v, ok := cache.Get(ctx, "forever"); !ok || v != "b" {
		t.Errorf("expected non-expiring entry, got %q %v", v, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("expected expired entry to be evicted, have %d", cache.Len())
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache()
	if _, ok := cache.Get(context.Background(), "missing"); ok {
		t.Errorf("expected miss")
	}
}
