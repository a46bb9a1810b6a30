package reports

import (
	"sort"

	"lost-pet-alerts/internal/platform/geo"
)

// Visible filtra a los reportes con coordenadas dentro del viewport. Un
// reporte sin coordenadas nunca aparece en resultados de proximidad: acá no
// se inventan posiciones (eso es asunto del render del mapa, no de la query).
func Visible(pets []DisplayPet, region geo.Region) []DisplayPet {
	out := make([]DisplayPet, 0, len(pets))
	for _, p := range pets {
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}
		if region.Contains(*p.Latitude, *p.Longitude) {
			out = append(out, p)
		}
	}
	return out
}

// Nearest ordena ascendente por distancia haversine al ancla, excluyendo
// reportes sin coordenadas. Empates se rompen por id ascendente para que el
// resultado sea determinista.
func Nearest(pets []DisplayPet, anchorLat, anchorLon float64) []DisplayPet {
	out := make([]DisplayPet, 0, len(pets))
	for _, p := range pets {
		if p.Latitude != nil && p.Longitude != nil {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di := geo.HaversineKm(anchorLat, anchorLon, *out[i].Latitude, *out[i].Longitude)
		dj := geo.HaversineKm(anchorLat, anchorLon, *out[j].Latitude, *out[j].Longitude)
		if di != dj {
			return di < dj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
