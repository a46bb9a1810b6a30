package verification

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"lost-pet-alerts/internal/platform/logger"
)

// CodeTTL es la ventana de validez del código. Es una regla de datos (se
// evalúa al verificar), no un timeout de operación en vuelo.
const CodeTTL = 10 * time.Minute

// Resultados de rutina del flujo de usuario: nunca se loguean como
// inesperados.
var (
	ErrNotFound      = errors.New("no se encontró código de verificación")
	ErrExpired       = errors.New("el código ha expirado")
	ErrEmailMismatch = errors.New("el correo no coincide")
	ErrCodeMismatch  = errors.New("código incorrecto")
)

type Service struct {
	slots      SlotRepository
	dispatcher Dispatcher
	log        *logger.Logger

	now     func() time.Time
	randInt func(n int) int
}

func NewService(slots SlotRepository, dispatcher Dispatcher, log *logger.Logger) *Service {
	return &Service{
		slots:      slots,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
		randInt:    rand.Intn,
	}
}

// Issue genera un código de 4 dígitos (uniforme 1000–9999), lo despacha y
// recién entonces lo persiste, pisando cualquier slot previo. Si el dispatch
// falla no se persiste nada: un código inentregable no debe bloquear la
// siguiente emisión.
func (s *Service) Issue(ctx context.Context, email string) (string, error) {
	code := strconv.Itoa(1000 + s.randInt(9000))

	if err := s.dispatcher.SendCode(ctx, email, code); err != nil {
		return "", err
	}

	if err := s.slots.Put(ctx, Slot{Email: email, Code: code, IssuedAt: s.now()}); err != nil {
		return "", err
	}
	return code, nil
}

// Verify compara el código ingresado contra el slot.
//
// Solo el éxito y la expiración consumen el slot: un intento con código o
// correo equivocado lo conserva, para que el usuario reintente sin repetir
// todo el round-trip de email.
func (s *Service) Verify(ctx context.Context, enteredCode, email string) error {
	slot, ok, err := s.slots.Get(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	if s.now().Sub(slot.IssuedAt) > CodeTTL {
		if cerr := s.slots.Clear(ctx); cerr != nil {
			s.log.Warn("clear expired verification slot failed", "err", cerr.Error())
		}
		return ErrExpired
	}

	if slot.Email != email {
		return ErrEmailMismatch
	}
	if slot.Code != enteredCode {
		return ErrCodeMismatch
	}

	return s.slots.Clear(ctx)
}
