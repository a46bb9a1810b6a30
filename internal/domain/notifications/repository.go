package notifications

import "context"

// Repository persiste el feed completo como una sola unidad (clave JSON).
// El orden almacenado es irrelevante: el listado re-ordena al leer.
type Repository interface {
	LoadAll(ctx context.Context) ([]Notification, error)
	SaveAll(ctx context.Context, ns []Notification) error
}
