package notifications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"lost-pet-alerts/internal/metrics"
	"lost-pet-alerts/internal/platform/validate"
)

func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Collector) {
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Post("/", createNotificationHandler(svc, m))
		nr.Delete("/{notificationID}", deleteNotificationHandler(svc))
	})
}

type createNotificationRequest struct {
	Type        string   `json:"type" validate:"required,oneof=lost_pet_registered pet_seen pet_found"`
	PetID       string   `json:"petId"`
	PetName     string   `json:"petName" validate:"required"`
	PetType     string   `json:"petType" validate:"omitempty,oneof=dog cat"`
	Description string   `json:"description"`
	ImageURI    string   `json:"imageUri"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// notificationResponse incluye title/description ya resueltos para que el
// feed renderice sin hacer join con el reporte (petId es referencia débil).
type notificationResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	PetID       string    `json:"petId"`
	PetName     string    `json:"petName"`
	PetType     string    `json:"petType"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURI    string    `json:"imageUri,omitempty"`
	Location    string    `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns := svc.List(r.Context())

		out := make([]notificationResponse, 0, len(ns))
		for _, n := range ns {
			out = append(out, toNotificationResponse(n))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createNotificationHandler(svc *Service, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		n, err := svc.Add(r.Context(), CreateInput{
			Type:        req.Type,
			PetID:       req.PetID,
			PetName:     req.PetName,
			PetType:     req.PetType,
			Description: req.Description,
			ImageURI:    req.ImageURI,
			Location:    req.Location,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		m.RecordNotificationCreated(string(n.Type))

		writeJSON(w, http.StatusCreated, toNotificationResponse(n))
	}
}

func deleteNotificationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "notificationID"))
		if id == "" {
			http.Error(w, "notification id required", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toNotificationResponse(n Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		Type:        string(n.Type),
		PetID:       n.PetID,
		PetName:     n.PetName,
		PetType:     n.PetType,
		Title:       TitleFor(n),
		Description: DescriptionFor(n),
		ImageURI:    n.ImageURI,
		Location:    n.Location,
		Latitude:    n.Latitude,
		Longitude:   n.Longitude,
		CreatedAt:   n.CreatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo para
// no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
