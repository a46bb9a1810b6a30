package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lost-pet-alerts/internal/domain/verification"
	"lost-pet-alerts/internal/ports/kvstore"
)

type VerificationRepo struct {
	store kvstore.Store
}

func NewVerificationRepo(store kvstore.Store) *VerificationRepo {
	return &VerificationRepo{store: store}
}

// storedSlot conserva el timestamp en milisegundos epoch, la forma con la
// que se persistió históricamente esta clave.
type storedSlot struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	Timestamp int64  `json:"timestamp"`
}

func (r *VerificationRepo) Get(ctx context.Context) (verification.Slot, bool, error) {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyVerificationCode)
	if err != nil {
		return verification.Slot{}, false, fmt.Errorf("load verification slot: %w", err)
	}
	if !ok {
		return verification.Slot{}, false, nil
	}

	var s storedSlot
	if err := json.Unmarshal(raw, &s); err != nil {
		return verification.Slot{}, false, fmt.Errorf("decode verification slot: %w", err)
	}

	return verification.Slot{
		Email:    s.Email,
		Code:     s.Code,
		IssuedAt: time.UnixMilli(s.Timestamp),
	}, true, nil
}

func (r *VerificationRepo) Put(ctx context.Context, slot verification.Slot) error {
	raw, err := json.Marshal(storedSlot{
		Email:     slot.Email,
		Code:      slot.Code,
		Timestamp: slot.IssuedAt.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encode verification slot: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyVerificationCode, raw); err != nil {
		return fmt.Errorf("save verification slot: %w", err)
	}
	return nil
}

func (r *VerificationRepo) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, kvstore.KeyVerificationCode); err != nil {
		return fmt.Errorf("clear verification slot: %w", err)
	}
	return nil
}
