package geocode

import "context"

// Geocoder resuelve coordenadas a una dirección legible, best effort.
// Quien lo consume cae a "Lat: x, Lng: y" formateado cuando falla.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}
