package reports

import "time"

// PetType define los tipos de mascota soportados.
// @Enum dog, cat
type PetType string

const (
	PetTypeDog PetType = "dog"
	PetTypeCat PetType = "cat"
)

// MaxPhotos limita cuántas fotos acepta un reporte.
const MaxPhotos = 3

// Report representa un reporte de mascota perdida tal como se persiste.
// ID y CreatedAt son inmutables una vez creado el registro; no existe
// edición in-place (el flujo es append-only).
type Report struct {
	ID              string
	PetType         PetType
	Name            string
	Breed           string
	Characteristics string

	// Address es la dirección legible; puede faltar (se sintetiza desde
	// las coordenadas al proyectar para display).
	Address   string
	Latitude  *float64
	Longitude *float64

	LostAt    time.Time
	ImageURIs []string // primera = imagen principal
	CreatedAt time.Time
}

// HasCoordinates indica si el reporte tiene ubicación fijada. Un reporte
// sin coordenadas se crea igual, pero queda excluido de las consultas de
// proximidad.
func (r Report) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// DisplayPet es la proyección de lectura que consumen carrusel, buscador y
// mapa: agrega TimeLost calculado y la zona resuelta.
type DisplayPet struct {
	ID              string
	PetName         string
	TimeLost        string
	Type            PetType
	Zone            string
	Characteristics string

	// ImageURL queda por compatibilidad con consumidores de imagen única;
	// ImageURLs trae la lista completa ordenada.
	ImageURL  string
	ImageURLs []string

	Latitude  *float64
	Longitude *float64
}
