package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lost-pet-alerts/internal/platform/logger"
	"lost-pet-alerts/internal/ports/geocode"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo     Repository
	geocoder geocode.Geocoder // opcional; nil = sin resolución de direcciones
	log      *logger.Logger

	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, geocoder geocode.Geocoder, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		geocoder: geocoder,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

type CreateInput struct {
	PetType         string
	Name            string
	Breed           string
	Characteristics string
	Address         string
	Latitude        *float64
	Longitude       *float64

	// El instante de pérdida llega descompuesto como lo captura el flujo:
	// fecha (YYYY-MM-DD o RFC3339) más hora de reloj de 12 horas.
	LostDate string
	Hour     int
	Minute   int
	Period   string // AM | PM

	ImageURIs []string
}

// List devuelve todos los reportes, sembrando el catálogo inicial en el
// primer acceso. El path de lectura nunca falla hacia afuera: ante error de
// storage degrada a lista vacía (política "nunca tumbar el feed").
func (s *Service) List(ctx context.Context) []Report {
	if err := s.ensureSeeded(ctx); err != nil {
		s.log.Warn("seed init failed", "err", err.Error())
	}

	rs, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.log.Warn("load reports failed, serving empty list", "err", err.Error())
		return []Report{}
	}
	return rs
}

// ListDisplay es List proyectado a formato de display.
func (s *Service) ListDisplay(ctx context.Context) []DisplayPet {
	rs := s.List(ctx)
	out := make([]DisplayPet, 0, len(rs))
	for _, r := range rs {
		out = append(out, s.ToDisplay(r))
	}
	return out
}

// Add valida y anexa un reporte nuevo. A diferencia de List, los errores de
// escritura se propagan: la acción explícita del usuario necesita enterarse.
func (s *Service) Add(ctx context.Context, in CreateInput) (Report, error) {
	petType, err := parsePetType(in.PetType)
	if err != nil {
		return Report{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return Report{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Characteristics) == "" {
		return Report{}, ErrInvalidInput
	}
	if len(in.ImageURIs) > MaxPhotos {
		return Report{}, ErrInvalidInput
	}

	lostAt, err := composeLostAt(in.LostDate, in.Hour, in.Minute, in.Period)
	if err != nil {
		return Report{}, err
	}

	address := strings.TrimSpace(in.Address)
	if address == "" && in.Latitude != nil && in.Longitude != nil && s.geocoder != nil {
		resolved, gerr := s.geocoder.Reverse(ctx, *in.Latitude, *in.Longitude)
		if gerr != nil {
			// best effort: el display sintetiza "Lat: x, Lng: y" después
			s.log.Debug("reverse geocode failed", "err", gerr.Error())
		} else {
			address = resolved
		}
	}

	if err := s.ensureSeeded(ctx); err != nil {
		return Report{}, err
	}
	rs, err := s.repo.LoadAll(ctx)
	if err != nil {
		return Report{}, err
	}

	now := s.now()
	r := Report{
		ID:              s.newID(),
		PetType:         petType,
		Name:            strings.TrimSpace(in.Name),
		Breed:           strings.TrimSpace(in.Breed),
		Characteristics: strings.TrimSpace(in.Characteristics),
		Address:         address,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		LostAt:          lostAt,
		ImageURIs:       in.ImageURIs,
		CreatedAt:       now,
	}

	rs = append(rs, r)
	if err := s.repo.SaveAll(ctx, rs); err != nil {
		return Report{}, err
	}
	return r, nil
}

// Delete elimina por id. Id ausente no es error (delete idempotente).
func (s *Service) Delete(ctx context.Context, id string) error {
	rs, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := rs[:0]
	for _, r := range rs {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(rs) {
		return nil
	}
	return s.repo.SaveAll(ctx, kept)
}

// ensureSeeded siembra el catálogo en el primer acceso. Con el store ya
// inicializado solo verifica la tanda de aumento: si ninguno de esos ids
// existe, los anexa (una vez). Borrados manuales de otras filas no se
// resucitan porque el flag vive aparte de los datos.
func (s *Service) ensureSeeded(ctx context.Context) error {
	initialized, err := s.repo.Initialized(ctx)
	if err != nil {
		return err
	}

	if initialized {
		rs, err := s.repo.LoadAll(ctx)
		if err != nil {
			return err
		}
		if containsAnyID(rs, augmentIDs) {
			return nil
		}
		rs = append(rs, seedReports(s.now(), augmentIDs)...)
		return s.repo.SaveAll(ctx, rs)
	}

	if err := s.repo.SaveAll(ctx, seedReports(s.now(), allSeedIDs())); err != nil {
		return err
	}
	return s.repo.MarkInitialized(ctx)
}

func containsAnyID(rs []Report, ids []string) bool {
	for _, r := range rs {
		for _, id := range ids {
			if r.ID == id {
				return true
			}
		}
	}
	return false
}

func parsePetType(s string) (PetType, error) {
	switch PetType(strings.TrimSpace(s)) {
	case PetTypeDog:
		return PetTypeDog, nil
	case PetTypeCat:
		return PetTypeCat, nil
	default:
		return "", fmt.Errorf("%w: petType debe ser dog o cat", ErrInvalidInput)
	}
}

// composeLostAt normaliza fecha + hora de reloj de 12 horas a un instante
// absoluto. Hora 12 AM = 00, 12 PM = 12.
func composeLostAt(date string, hour, minute int, period string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, fmt.Errorf("%w: falta la fecha de pérdida", ErrInvalidInput)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		day, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: fecha inválida", ErrInvalidInput)
		}
	}

	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: hora inválida", ErrInvalidInput)
	}
	period = strings.ToUpper(strings.TrimSpace(period))
	if period != "AM" && period != "PM" {
		return time.Time{}, fmt.Errorf("%w: periodo debe ser AM o PM", ErrInvalidInput)
	}

	h := hour % 12
	if period == "PM" {
		h += 12
	}

	return time.Date(day.Year(), day.Month(), day.Day(), h, minute, 0, 0, time.UTC), nil
}
