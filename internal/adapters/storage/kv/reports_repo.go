package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lost-pet-alerts/internal/domain/reports"
	"lost-pet-alerts/internal/ports/kvstore"
)

type ReportsRepo struct {
	store kvstore.Store
}

func NewReportsRepo(store kvstore.Store) *ReportsRepo {
	return &ReportsRepo{store: store}
}

// storedReport es la forma persistida bajo "lostPets". Además de la forma
// canónica decodifica registros legados: imageUri única, "location" en vez
// de "address", y fecha descompuesta (date + hour/minute/period). Siempre
// se re-escribe en forma canónica.
type storedReport struct {
	ID              string   `json:"id"`
	PetType         string   `json:"petType"`
	Name            string   `json:"name"`
	Breed           string   `json:"breed"`
	Characteristics string   `json:"characteristics"`
	Address         string   `json:"address,omitempty"`
	LostAt          string   `json:"lostAt,omitempty"`
	ImageURIs       []string `json:"imageUris,omitempty"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	CreatedAt       string   `json:"createdAt"`

	// Campos legados, solo lectura.
	Location string `json:"location,omitempty"`
	Date     string `json:"date,omitempty"`
	Hour     int    `json:"hour,omitempty"`
	Minute   int    `json:"minute,omitempty"`
	Period   string `json:"period,omitempty"`
	ImageURI string `json:"imageUri,omitempty"`
}

func (r *ReportsRepo) LoadAll(ctx context.Context) ([]reports.Report, error) {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyLostPets)
	if err != nil {
		return nil, fmt.Errorf("load lost pets: %w", err)
	}
	if !ok {
		return []reports.Report{}, nil
	}

	var stored []storedReport
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode lost pets: %w", err)
	}

	out := make([]reports.Report, 0, len(stored))
	for _, s := range stored {
		out = append(out, s.toDomain())
	}
	return out, nil
}

func (r *ReportsRepo) SaveAll(ctx context.Context, rs []reports.Report) error {
	stored := make([]storedReport, 0, len(rs))
	for _, rep := range rs {
		stored = append(stored, toStored(rep))
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode lost pets: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyLostPets, raw); err != nil {
		return fmt.Errorf("save lost pets: %w", err)
	}
	return nil
}

func (r *ReportsRepo) Initialized(ctx context.Context) (bool, error) {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyInitialized)
	if err != nil {
		return false, fmt.Errorf("load init flag: %w", err)
	}
	return ok && string(raw) == `"true"`, nil
}

func (r *ReportsRepo) MarkInitialized(ctx context.Context) error {
	if err := r.store.Set(ctx, kvstore.KeyInitialized, []byte(`"true"`)); err != nil {
		return fmt.Errorf("save init flag: %w", err)
	}
	return nil
}

func (s storedReport) toDomain() reports.Report {
	address := s.Address
	if address == "" {
		address = s.Location
	}

	imageURIs := s.ImageURIs
	if len(imageURIs) == 0 && s.ImageURI != "" {
		imageURIs = []string{s.ImageURI}
	}

	createdAt, _ := time.Parse(time.RFC3339, s.CreatedAt)

	return reports.Report{
		ID:              s.ID,
		PetType:         reports.PetType(s.PetType),
		Name:            s.Name,
		Breed:           s.Breed,
		Characteristics: s.Characteristics,
		Address:         address,
		Latitude:        s.Latitude,
		Longitude:       s.Longitude,
		LostAt:          s.lostAt(createdAt),
		ImageURIs:       imageURIs,
		CreatedAt:       createdAt,
	}
}

// lostAt resuelve el instante de pérdida: forma canónica primero, luego la
// forma legada fecha + reloj de 12 horas; como último recurso, createdAt.
func (s storedReport) lostAt(fallback time.Time) time.Time {
	if s.LostAt != "" {
		if t, err := time.Parse(time.RFC3339, s.LostAt); err == nil {
			return t
		}
	}

	if s.Date != "" {
		day, err := time.Parse(time.RFC3339, s.Date)
		if err != nil {
			day, err = time.Parse("2006-01-02", s.Date)
		}
		if err == nil {
			h := s.Hour % 12
			if s.Period == "PM" {
				h += 12
			}
			return time.Date(day.Year(), day.Month(), day.Day(), h, s.Minute, 0, 0, time.UTC)
		}
	}

	return fallback
}

func toStored(r reports.Report) storedReport {
	return storedReport{
		ID:              r.ID,
		PetType:         string(r.PetType),
		Name:            r.Name,
		Breed:           r.Breed,
		Characteristics: r.Characteristics,
		Address:         r.Address,
		LostAt:          r.LostAt.Format(time.RFC3339),
		ImageURIs:       r.ImageURIs,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}
