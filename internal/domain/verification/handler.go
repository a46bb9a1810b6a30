package verification

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lost-pet-alerts/internal/metrics"
	"lost-pet-alerts/internal/platform/validate"
)

// RegisterRoutes registra el flujo de verificación. sendLimiter va solo en
// /send, que dispara email saliente.
func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Collector, sendLimiter func(http.Handler) http.Handler) {
	r.Route("/verification", func(vr chi.Router) {
		if sendLimiter != nil {
			vr.With(sendLimiter).Post("/send", sendCodeHandler(svc, m))
		} else {
			vr.Post("/send", sendCodeHandler(svc, m))
		}
		vr.Post("/verify", verifyCodeHandler(svc, m))
	})
}

type sendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=4,numeric"`
}

type verifyResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func sendCodeHandler(svc *Service, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// El código nunca vuelve en la respuesta: solo viaja por email.
		if _, err := svc.Issue(r.Context(), req.Email); err != nil {
			m.RecordVerificationSend(false)

			var derr *DispatchError
			if errors.As(err, &derr) {
				writeJSON(w, http.StatusBadGateway, map[string]any{"sent": false, "error": derr.Message})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		m.RecordVerificationSend(true)

		writeJSON(w, http.StatusAccepted, map[string]any{"sent": true})
	}
}

func verifyCodeHandler(svc *Service, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err := svc.Verify(r.Context(), req.Code, req.Email)
		if err == nil {
			m.RecordVerifyResult("ok")
			writeJSON(w, http.StatusOK, verifyResponse{Valid: true})
			return
		}

		// Resultados de rutina del flujo: respuesta 422 con mensaje
		// localizado, sin tratarlos como fallas del servidor.
		switch {
		case errors.Is(err, ErrNotFound):
			m.RecordVerifyResult("not_found")
		case errors.Is(err, ErrExpired):
			m.RecordVerifyResult("expired")
		case errors.Is(err, ErrEmailMismatch):
			m.RecordVerifyResult("email_mismatch")
		case errors.Is(err, ErrCodeMismatch):
			m.RecordVerifyResult("code_mismatch")
		default:
			m.RecordVerifyResult("error")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusUnprocessableEntity, verifyResponse{Valid: false, Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
