package geo

import "math"

const earthRadiusKm = 6371.0

// Region representa un viewport rectangular al estilo de un mapa móvil:
// un centro más deltas de latitud/longitud (el ancho total del recuadro).
type Region struct {
	Latitude       float64
	Longitude      float64
	LatitudeDelta  float64
	LongitudeDelta float64
}

// DefaultRegion es el anclaje fijo cuando no hay ubicación del dispositivo:
// Universidad Privada del Valle Sede La Paz.
func DefaultRegion() Region {
	return Region{
		Latitude:       -16.5035295,
		Longitude:      -68.1226286,
		LatitudeDelta:  0.01,
		LongitudeDelta: 0.015,
	}
}

// Contains indica si el punto cae dentro del recuadro alineado a los ejes
// [centro ± delta/2] en ambos ejes. Los bordes cuentan como adentro.
func (r Region) Contains(lat, lon float64) bool {
	return lat >= r.Latitude-r.LatitudeDelta/2 &&
		lat <= r.Latitude+r.LatitudeDelta/2 &&
		lon >= r.Longitude-r.LongitudeDelta/2 &&
		lon <= r.Longitude+r.LongitudeDelta/2
}

// HaversineKm calcula la distancia de círculo máximo en kilómetros.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
