package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter aplica token bucket por IP de cliente. Lo usamos solo en el
// envío de códigos de verificación, que dispara email saliente.
type RateLimiter struct {
	mu      sync.Mutex
	perIP   map[string]*entry
	limit   rate.Limit
	burst   int
	maxIdle time.Duration
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter permite perMinute solicitudes por minuto con el burst dado.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 5
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &RateLimiter{
		perIP:   make(map[string]*entry),
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		maxIdle: 10 * time.Minute,
	}
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Demasiadas solicitudes. Intenta de nuevo en unos minutos."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Limpieza perezosa de entradas inactivas; el mapa se mantiene chico
	// sin necesidad de un goroutine de fondo.
	for k, e := range rl.perIP {
		if now.Sub(e.lastSeen) > rl.maxIdle {
			delete(rl.perIP, k)
		}
	}

	e, ok := rl.perIP[ip]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.perIP[ip] = e
	}
	e.lastSeen = now
	return e.limiter.Allow()
}

func clientIP(r *http.Request) string {
	// chi RealIP corre antes y ya reescribe RemoteAddr si hay X-Real-IP.
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
