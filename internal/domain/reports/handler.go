package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"lost-pet-alerts/internal/domain/notifications"
	"lost-pet-alerts/internal/metrics"
	"lost-pet-alerts/internal/platform/geo"
	"lost-pet-alerts/internal/platform/validate"
)

func RegisterRoutes(r chi.Router, svc *Service, notifSvc *notifications.Service, m *metrics.Collector) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc, notifSvc, m))
		pr.Delete("/{petID}", deletePetHandler(svc, m))
	})
}

type createReportRequest struct {
	PetType         string   `json:"petType" validate:"required,oneof=dog cat"`
	Name            string   `json:"name" validate:"required"`
	Breed           string   `json:"breed"`
	Characteristics string   `json:"characteristics" validate:"required"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	LostDate        string   `json:"lostDate" validate:"required"`
	Hour            int      `json:"hour" validate:"min=1,max=12"`
	Minute          int      `json:"minute" validate:"min=0,max=59"`
	Period          string   `json:"period" validate:"required,oneof=AM PM"`
	ImageURIs       []string `json:"imageUris" validate:"max=3"`
}

// displayPetResponse conserva las claves que ya consumen carrusel, buscador
// y mapa ("zone", "imageUrl" singular por compatibilidad).
type displayPetResponse struct {
	ID              string   `json:"id"`
	PetName         string   `json:"petName"`
	TimeLost        string   `json:"timeLost"`
	Type            string   `json:"type"`
	Zone            string   `json:"zone"`
	Characteristics string   `json:"characteristics"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	ImageURLs       []string `json:"imageUrls"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// listPetsHandler sirve el listado en formato display. Filtros opcionales:
// - lat, lng, latDelta, lngDelta: solo reportes dentro del viewport
// - anchorLat, anchorLng: ordena por cercanía al ancla
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets := svc.ListDisplay(r.Context())

		q := r.URL.Query()
		if q.Get("lat") != "" || q.Get("latDelta") != "" {
			region, err := regionFromQuery(q.Get("lat"), q.Get("lng"), q.Get("latDelta"), q.Get("lngDelta"))
			if err != nil {
				http.Error(w, "invalid region params", http.StatusBadRequest)
				return
			}
			pets = Visible(pets, region)
		}

		if q.Get("anchorLat") != "" || q.Get("anchorLng") != "" {
			anchorLat, err1 := strconv.ParseFloat(q.Get("anchorLat"), 64)
			anchorLng, err2 := strconv.ParseFloat(q.Get("anchorLng"), 64)
			if err1 != nil || err2 != nil {
				http.Error(w, "invalid anchor params", http.StatusBadRequest)
				return
			}
			pets = Nearest(pets, anchorLat, anchorLng)
		}

		out := make([]displayPetResponse, 0, len(pets))
		for _, p := range pets {
			out = append(out, toDisplayResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createPetHandler(svc *Service, notifSvc *notifications.Service, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rep, err := svc.Add(r.Context(), CreateInput{
			PetType:         req.PetType,
			Name:            req.Name,
			Breed:           req.Breed,
			Characteristics: req.Characteristics,
			Address:         req.Address,
			Latitude:        req.Latitude,
			Longitude:       req.Longitude,
			LostDate:        req.LostDate,
			Hour:            req.Hour,
			Minute:          req.Minute,
			Period:          req.Period,
			ImageURIs:       req.ImageURIs,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		m.RecordReportRegistered()

		// Evento de ciclo de vida: entra al feed como escritura independiente
		// (sin transacción con el reporte; un reporte sin notificación es una
		// inconsistencia tolerable).
		var imageURI string
		if len(rep.ImageURIs) > 0 {
			imageURI = rep.ImageURIs[0]
		}
		if _, nerr := notifSvc.Add(r.Context(), notifications.CreateInput{
			Type:      string(notifications.TypeLostPetRegistered),
			PetID:     rep.ID,
			PetName:   rep.Name,
			PetType:   string(rep.PetType),
			ImageURI:  imageURI,
			Location:  rep.Address,
			Latitude:  rep.Latitude,
			Longitude: rep.Longitude,
		}); nerr != nil {
			svc.log.Warn("registered notification not persisted", "petId", rep.ID, "err", nerr.Error())
		} else {
			m.RecordNotificationCreated(string(notifications.TypeLostPetRegistered))
		}

		writeJSON(w, http.StatusCreated, toDisplayResponse(svc.ToDisplay(rep)))
	}
}

func deletePetHandler(svc *Service, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := strings.TrimSpace(chi.URLParam(r, "petID"))
		if petID == "" {
			http.Error(w, "pet id required", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		m.RecordReportDeleted()
		w.WriteHeader(http.StatusNoContent)
	}
}

func regionFromQuery(lat, lng, latDelta, lngDelta string) (geo.Region, error) {
	parsed := [4]float64{}
	for i, s := range []string{lat, lng, latDelta, lngDelta} {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return geo.Region{}, err
		}
		parsed[i] = v
	}
	return geo.Region{
		Latitude:       parsed[0],
		Longitude:      parsed[1],
		LatitudeDelta:  parsed[2],
		LongitudeDelta: parsed[3],
	}, nil
}

func toDisplayResponse(p DisplayPet) displayPetResponse {
	urls := p.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	return displayPetResponse{
		ID:              p.ID,
		PetName:         p.PetName,
		TimeLost:        p.TimeLost,
		Type:            string(p.Type),
		Zone:            p.Zone,
		Characteristics: p.Characteristics,
		ImageURL:        p.ImageURL,
		ImageURLs:       urls,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo para
// no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
