// Package metrics recolecta y publica métricas Prometheus del servicio.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector agrupa los contadores del dominio. Un *Collector nil es válido y
// descarta todo (los tests de dominio no necesitan registry).
type Collector struct {
	reportsRegistered    prometheus.Counter
	reportsDeleted       prometheus.Counter
	notificationsCreated *prometheus.CounterVec
	verificationSend     *prometheus.CounterVec
	verifyResults        *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		reportsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lostpets_reports_registered_total",
			Help: "Reportes de mascota perdida creados.",
		}),
		reportsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lostpets_reports_deleted_total",
			Help: "Reportes eliminados.",
		}),
		notificationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lostpets_notifications_created_total",
			Help: "Notificaciones creadas por tipo de evento.",
		}, []string{"type"}),
		verificationSend: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lostpets_verification_send_total",
			Help: "Despachos de código de verificación por resultado (sent|failed).",
		}, []string{"outcome"}),
		verifyResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lostpets_verification_verify_total",
			Help: "Intentos de verificación por resultado.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.reportsRegistered,
		c.reportsDeleted,
		c.notificationsCreated,
		c.verificationSend,
		c.verifyResults,
	)
	return c
}

func (c *Collector) RecordReportRegistered() {
	if c == nil {
		return
	}
	c.reportsRegistered.Inc()
}

func (c *Collector) RecordReportDeleted() {
	if c == nil {
		return
	}
	c.reportsDeleted.Inc()
}

func (c *Collector) RecordNotificationCreated(notifType string) {
	if c == nil {
		return
	}
	c.notificationsCreated.WithLabelValues(notifType).Inc()
}

func (c *Collector) RecordVerificationSend(ok bool) {
	if c == nil {
		return
	}
	outcome := "sent"
	if !ok {
		outcome = "failed"
	}
	c.verificationSend.WithLabelValues(outcome).Inc()
}

// RecordVerifyResult registra el resultado de un intento de verificación:
// ok, not_found, expired, email_mismatch, code_mismatch o error.
func (c *Collector) RecordVerifyResult(result string) {
	if c == nil {
		return
	}
	c.verifyResults.WithLabelValues(result).Inc()
}

// Handler devuelve el handler de scrape para /metrics.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
