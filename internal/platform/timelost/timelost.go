// Package timelost convierte entre instantes de pérdida y las etiquetas
// legibles que muestra la app ("Hoy", "3 días", "1 semana", "2 meses"...).
//
// El redondeo es intencionalmente con pérdida: las etiquetas son baldes,
// no duraciones exactas. ParseToDays recupera un conteo aproximado de días
// solo para ordenar.
package timelost

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UnknownDays es el centinela para etiquetas no reconocidas: ordena al final.
const UnknownDays = int64(math.MaxInt64)

var (
	reDays   = regexp.MustCompile(`(\d+)\s*días?`)
	reWeeks  = regexp.MustCompile(`(\d+)\s*semanas?`)
	reMonths = regexp.MustCompile(`(\d+)\s*mes(?:es)?`)
)

// Format clasifica los días transcurridos entre from y now en la etiqueta
// correspondiente. Los umbrales son fijos (0, 1, 7, 14, 21, 30, 60, 90).
func Format(from, now time.Time) string {
	days := int(math.Floor(now.Sub(from).Hours() / 24))
	if days < 0 {
		days = 0
	}

	switch {
	case days == 0:
		return "Hoy"
	case days == 1:
		return "1 día"
	case days < 7:
		return fmt.Sprintf("%d días", days)
	case days < 14:
		return "1 semana"
	case days < 21:
		return "2 semanas"
	case days < 30:
		return "3 semanas"
	case days < 60:
		return "1 mes"
	case days < 90:
		return "2 meses"
	default:
		return fmt.Sprintf("%d meses", days/30)
	}
}

// ParseToDays invierte Format de manera aproximada:
// "Hoy" → 0, "N día(s)" → N, "N semana(s)" → N×7,
// "N mes(es) [y D día(s)]" → N×30+D. Entrada irreconocible → UnknownDays.
func ParseToDays(display string) int64 {
	s := strings.TrimSpace(display)
	if strings.EqualFold(s, "hoy") {
		return 0
	}

	if m := reMonths.FindStringSubmatch(s); m != nil {
		months, _ := strconv.ParseInt(m[1], 10, 64)
		var extra int64
		if d := reDays.FindStringSubmatch(s); d != nil {
			extra, _ = strconv.ParseInt(d[1], 10, 64)
		}
		return months*30 + extra
	}

	if m := reWeeks.FindStringSubmatch(s); m != nil {
		weeks, _ := strconv.ParseInt(m[1], 10, 64)
		return weeks * 7
	}

	if m := reDays.FindStringSubmatch(s); m != nil {
		days, _ := strconv.ParseInt(m[1], 10, 64)
		return days
	}

	return UnknownDays
}
