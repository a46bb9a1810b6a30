package kv

import (
	"context"
	"testing"
	"time"

	"lost-pet-alerts/internal/adapters/storage/memory"
	"lost-pet-alerts/internal/domain/verification"
)

func TestVerificationRepo_SlotLifecycle(t *testing.T) {
	repo := NewVerificationRepo(memory.NewStore())
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx); err != nil || ok {
		t.Fatalf("fresh store: got ok=%v err=%v", ok, err)
	}

	issued := time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC)
	slot := verification.Slot{Email: "ana@example.com", Code: "3345", IssuedAt: issued}
	if err := repo.Put(ctx, slot); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := repo.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Email != slot.Email || got.Code != slot.Code {
		t.Fatalf("slot mismatch: %+v", got)
	}
	// El timestamp persiste en milisegundos epoch; la relectura vuelve en UTC
	// con precisión de milisegundo.
	if got.IssuedAt.UnixMilli() != issued.UnixMilli() {
		t.Fatalf("issuedAt: got %v, want %v", got.IssuedAt, issued)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := repo.Get(ctx); ok {
		t.Fatal("slot still present after clear")
	}

	// Clear sobre clave ausente no es error.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
