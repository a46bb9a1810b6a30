package notifications

import "time"

// Type define los eventos del ciclo de vida de una mascota que generan
// entradas en el feed.
// @Enum lost_pet_registered, pet_seen, pet_found
type Type string

const (
	TypeLostPetRegistered Type = "lost_pet_registered"
	TypePetSeen           Type = "pet_seen"
	TypePetFound          Type = "pet_found"
)

// Notification es una entrada del feed. PetID es una referencia débil: la
// mascota puede haber sido borrada y el feed igual debe renderizar, por eso
// PetName y PetType van denormalizados al momento de crearla.
type Notification struct {
	ID   string
	Type Type

	PetID   string
	PetName string
	PetType string // "dog" | "cat"; vacío se trata como cat en los templates

	// Description opcional del usuario; si falta, el display cae al
	// template derivado de Type y PetType.
	Description string

	ImageURI  string
	Location  string
	Latitude  *float64
	Longitude *float64

	CreatedAt time.Time
}
