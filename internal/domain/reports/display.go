package reports

import (
	"fmt"

	"lost-pet-alerts/internal/platform/timelost"
)

// placeholderZone se muestra cuando el registro no tiene dirección ni
// coordenadas de las cuales sintetizar una.
const placeholderZone = "Ubicación no especificada"

// ToDisplay proyecta un Report al formato de display: calcula la etiqueta
// TimeLost contra el reloj del servicio y resuelve la zona. La proyección es
// pura; normaliza siempre a la forma canónica de imágenes sin importar qué
// forma traía el registro almacenado.
func (s *Service) ToDisplay(r Report) DisplayPet {
	zone := r.Address
	if zone == "" {
		if r.HasCoordinates() {
			zone = fmt.Sprintf("Lat: %.4f, Lng: %.4f", *r.Latitude, *r.Longitude)
		} else {
			zone = placeholderZone
		}
	}

	var imageURL string
	if len(r.ImageURIs) > 0 {
		imageURL = r.ImageURIs[0]
	}

	return DisplayPet{
		ID:              r.ID,
		PetName:         r.Name,
		TimeLost:        timelost.Format(r.LostAt, s.now()),
		Type:            r.PetType,
		Zone:            zone,
		Characteristics: r.Characteristics,
		ImageURL:        imageURL,
		ImageURLs:       r.ImageURIs,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
	}
}
