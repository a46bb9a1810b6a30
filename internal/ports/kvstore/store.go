package kvstore

import "context"

// Claves canónicas del namespace compartido. Son independientes entre sí:
// no hay transacciones cross-key (un crash entre dos escrituras deja una
// inconsistencia tolerable que los lectores deben asumir).
const (
	KeyLostPets         = "lostPets"
	KeyNotifications    = "notifications"
	KeyVerificationCode = "verificationCode"
	KeyInitialized      = "storageInitialized"
)

// Store es un almacén clave/valor de blobs JSON. Los repositorios del
// dominio se construyen sobre esta interfaz para poder usar un doble
// in-memory en tests y Postgres/Redis en runtime.
type Store interface {
	// Get devuelve el valor y ok=false si la clave no existe.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
