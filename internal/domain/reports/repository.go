package reports

import "context"

// Repository persiste el listado completo de reportes como una sola unidad
// (el backend real es una clave JSON, no una tabla por fila). El flag de
// inicialización vive aparte de los datos para que re-correr la siembra
// nunca duplique filas ya existentes.
type Repository interface {
	LoadAll(ctx context.Context) ([]Report, error)
	SaveAll(ctx context.Context, rs []Report) error

	Initialized(ctx context.Context) (bool, error)
	MarkInitialized(ctx context.Context) error
}
