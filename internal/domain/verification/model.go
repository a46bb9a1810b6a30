package verification

import (
	"context"
	"fmt"
	"time"
)

// Slot es el único desafío de verificación pendiente en todo el proceso.
// Emitir un código nuevo pisa al anterior: no hay mapa por email.
type Slot struct {
	Email    string
	Code     string // 4 dígitos
	IssuedAt time.Time
}

// SlotRepository persiste el slot único bajo la clave "verificationCode".
type SlotRepository interface {
	Get(ctx context.Context) (Slot, bool, error)
	Put(ctx context.Context, s Slot) error
	Clear(ctx context.Context) error
}

// Dispatcher entrega el código al destinatario (email saliente). El core
// solo persiste el slot después de que el dispatch reporte éxito.
type Dispatcher interface {
	SendCode(ctx context.Context, email, code string) error
}

// DispatchError es la falla de entrega reportada por el dispatcher. Message
// lleva el mensaje del proveedor si está disponible, o un fallback
// localizado, y es apto para mostrar al usuario.
type DispatchError struct {
	StatusCode int
	Message    string
}

func (e *DispatchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("email dispatch failed: status=%d %s", e.StatusCode, e.Message)
	}
	return "email dispatch failed: " + e.Message
}
