package verification

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSlots struct {
	slot   Slot
	hasOne bool

	putErr   error
	clearErr error
}

func (f *fakeSlots) Get(ctx context.Context) (Slot, bool, error) {
	return f.slot, f.hasOne, nil
}

func (f *fakeSlots) Put(ctx context.Context, s Slot) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.slot, f.hasOne = s, true
	return nil
}

func (f *fakeSlots) Clear(ctx context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.slot, f.hasOne = Slot{}, false
	return nil
}

type fakeDispatcher struct {
	err   error
	email string
	code  string
	calls int
}

func (f *fakeDispatcher) SendCode(ctx context.Context, email, code string) error {
	f.calls++
	f.email, f.code = email, code
	if f.err != nil {
		return f.err
	}
	return nil
}

func newTestService(slots SlotRepository, d Dispatcher) (*Service, *time.Time) {
	svc := NewService(slots, d, nil)
	now := time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	svc.randInt = func(n int) int { return 2345 } // código fijo: 3345
	return svc, &now
}

func TestIssue_DispatchesThenPersists(t *testing.T) {
	slots := &fakeSlots{}
	d := &fakeDispatcher{}
	svc, _ := newTestService(slots, d)

	code, err := svc.Issue(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if code != "3345" {
		t.Fatalf("code: got %q, want 3345", code)
	}
	if d.email != "ana@example.com" || d.code != "3345" {
		t.Fatalf("dispatcher saw %q/%q", d.email, d.code)
	}
	if !slots.hasOne || slots.slot.Code != "3345" {
		t.Fatalf("slot not persisted: %+v", slots.slot)
	}
}

func TestIssue_DispatchFailureDoesNotPersist(t *testing.T) {
	slots := &fakeSlots{}
	d := &fakeDispatcher{err: &DispatchError{StatusCode: 401, Message: "Unauthorized"}}
	svc, _ := newTestService(slots, d)

	if _, err := svc.Issue(context.Background(), "ana@example.com"); err == nil {
		t.Fatal("expected dispatch error")
	}
	if slots.hasOne {
		t.Fatal("slot must not persist when dispatch fails")
	}
}

func TestIssue_OverwritesPreviousSlot(t *testing.T) {
	slots := &fakeSlots{}
	svc, _ := newTestService(slots, &fakeDispatcher{})
	ctx := context.Background()

	if _, err := svc.Issue(ctx, "primero@example.com"); err != nil {
		t.Fatalf("first issue: %v", err)
	}
	if _, err := svc.Issue(ctx, "segundo@example.com"); err != nil {
		t.Fatalf("second issue: %v", err)
	}

	if slots.slot.Email != "segundo@example.com" {
		t.Fatalf("expected second issue to overwrite slot, got %+v", slots.slot)
	}

	// El primer correo ya no puede verificar.
	if err := svc.Verify(ctx, "3345", "primero@example.com"); !errors.Is(err, ErrEmailMismatch) {
		t.Fatalf("expected ErrEmailMismatch for overwritten slot, got %v", err)
	}
}

func TestVerify_SuccessConsumesSlot(t *testing.T) {
	slots := &fakeSlots{}
	svc, _ := newTestService(slots, &fakeDispatcher{})
	ctx := context.Background()

	code, _ := svc.Issue(ctx, "ana@example.com")
	if err := svc.Verify(ctx, code, "ana@example.com"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if slots.hasOne {
		t.Fatal("slot should be cleared after success")
	}
	if err := svc.Verify(ctx, code, "ana@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second verify: expected ErrNotFound, got %v", err)
	}
}

func TestVerify_MismatchesRetainSlot(t *testing.T) {
	slots := &fakeSlots{}
	svc, _ := newTestService(slots, &fakeDispatcher{})
	ctx := context.Background()

	code, _ := svc.Issue(ctx, "ana@example.com")

	if err := svc.Verify(ctx, "0000", "ana@example.com"); !errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("expected ErrCodeMismatch, got %v", err)
	}
	if err := svc.Verify(ctx, code, "otra@example.com"); !errors.Is(err, ErrEmailMismatch) {
		t.Fatalf("expected ErrEmailMismatch, got %v", err)
	}
	if !slots.hasOne {
		t.Fatal("mismatched attempts must not consume the slot")
	}

	// Reintento correcto dentro de la ventana: pasa.
	if err := svc.Verify(ctx, code, "ana@example.com"); err != nil {
		t.Fatalf("retry verify: %v", err)
	}
}

func TestVerify_ExpiryConsumesSlot(t *testing.T) {
	slots := &fakeSlots{}
	svc, now := newTestService(slots, &fakeDispatcher{})
	ctx := context.Background()

	code, _ := svc.Issue(ctx, "ana@example.com")

	// Exactamente en el límite todavía vale.
	*now = now.Add(CodeTTL)
	if err := svc.Verify(ctx, code, "ana@example.com"); err != nil {
		t.Fatalf("verify at TTL boundary: %v", err)
	}

	// De nuevo, esta vez dejando pasar la ventana.
	code, _ = svc.Issue(ctx, "ana@example.com")
	*now = now.Add(CodeTTL + time.Second)
	if err := svc.Verify(ctx, code, "ana@example.com"); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	if slots.hasOne {
		t.Fatal("expired slot should be cleared")
	}
	if err := svc.Verify(ctx, code, "ana@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after expiry clear: expected ErrNotFound, got %v", err)
	}
}

func TestVerify_NoSlot(t *testing.T) {
	svc, _ := newTestService(&fakeSlots{}, &fakeDispatcher{})
	if err := svc.Verify(context.Background(), "1234", "ana@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
