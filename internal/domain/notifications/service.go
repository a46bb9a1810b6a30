package notifications

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"lost-pet-alerts/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	log  *logger.Logger

	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	Type        string
	PetID       string
	PetName     string
	PetType     string
	Description string
	ImageURI    string
	Location    string
	Latitude    *float64
	Longitude   *float64
}

// List devuelve el feed ordenado por CreatedAt descendente (más nuevo
// primero). El orden es una proyección de lectura, no una propiedad
// almacenada. Ante error de storage degrada a feed vacío.
func (s *Service) List(ctx context.Context) []Notification {
	ns, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.log.Warn("load notifications failed, serving empty feed", "err", err.Error())
		return []Notification{}
	}

	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].CreatedAt.After(ns[j].CreatedAt)
	})
	return ns
}

// Add valida el tipo, asigna id/createdAt y antepone la entrada. Los errores
// de escritura se propagan.
func (s *Service) Add(ctx context.Context, in CreateInput) (Notification, error) {
	t, err := parseType(in.Type)
	if err != nil {
		return Notification{}, err
	}

	ns, err := s.repo.LoadAll(ctx)
	if err != nil {
		return Notification{}, err
	}

	n := Notification{
		ID:          s.newID(),
		Type:        t,
		PetID:       in.PetID,
		PetName:     strings.TrimSpace(in.PetName),
		PetType:     strings.TrimSpace(in.PetType),
		Description: strings.TrimSpace(in.Description),
		ImageURI:    in.ImageURI,
		Location:    strings.TrimSpace(in.Location),
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		CreatedAt:   s.now(),
	}

	ns = append([]Notification{n}, ns...)
	if err := s.repo.SaveAll(ctx, ns); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// Delete elimina por id; id ausente no es error.
func (s *Service) Delete(ctx context.Context, id string) error {
	ns, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := ns[:0]
	for _, n := range ns {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(ns) {
		return nil
	}
	return s.repo.SaveAll(ctx, kept)
}

func parseType(s string) (Type, error) {
	switch Type(strings.TrimSpace(s)) {
	case TypeLostPetRegistered:
		return TypeLostPetRegistered, nil
	case TypePetSeen:
		return TypePetSeen, nil
	case TypePetFound:
		return TypePetFound, nil
	default:
		return "", fmt.Errorf("%w: tipo de notificación desconocido", ErrInvalidInput)
	}
}
