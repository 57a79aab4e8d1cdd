package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"b2b_sourcing/internal/domain/entities"
)

func TestOrderMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	order := entities.Order{ID: "o-1", RequestID: "r-1", BuyerID: "b-1", Status: entities.OrderStatusReceived, Version: 1, CreatedAt: now}

	t.Run("one order per request", func(t *testing.T) {
		repo := NewOrderMemoryRepository()
		if _, err := repo.Create(ctx, order); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		dup := order
		dup.ID = "o-2"
		if _, err := repo.Create(ctx, dup); !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		got, _ := repo.GetByID(ctx, "o-2")
		if got.ID != "" {
			t.Fatalf("duplicate order must not be indexed: %+v", got)
		}
	})

	t.Run("lookup by id and request", func(t *testing.T) {
		repo := NewOrderMemoryRepository()
		_, _ = repo.Create(ctx, order)
		byID, _ := repo.GetByID(ctx, "o-1")
		byReq, _ := repo.GetByRequestID(ctx, "r-1")
		if byID.ID != "o-1" || byReq.ID != "o-1" {
			t.Fatalf("unexpected lookups: %+v %+v", byID, byReq)
		}
		missing, err := repo.GetByRequestID(ctx, "r-404")
		if err != nil || missing.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", missing, err)
		}
	})

	t.Run("update is compare and set", func(t *testing.T) {
		repo := NewOrderMemoryRepository()
		_, _ = repo.Create(ctx, order)
		next := order
		next.Status = entities.OrderStatusPreparing
		updated, err := repo.Update(ctx, next, 1)
		if err != nil || updated.Version != 2 {
			t.Fatalf("unexpected update: %+v %v", updated, err)
		}
		if _, err := repo.Update(ctx, next, 1); !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("list by buyer", func(t *testing.T) {
		repo := NewOrderMemoryRepository()
		_, _ = repo.Create(ctx, order)
		other := entities.Order{ID: "o-9", RequestID: "r-9", BuyerID: "b-2"}
		_, _ = repo.Create(ctx, other)
		got, err := repo.ListByBuyerID(ctx, "b-1")
		if err != nil || len(got) != 1 || got[0].ID != "o-1" {
			t.Fatalf("unexpected list: %+v %v", got, err)
		}
	})
}
