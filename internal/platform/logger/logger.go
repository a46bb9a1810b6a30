package logger

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Logger escribe líneas clave=valor (o JSON) con nivel mínimo configurable.
// Los campos van como pares variádicos: log.Info("pets loaded", "count", n).
// Un *Logger nil es válido y descarta todo (cómodo para tests).
type Logger struct {
	mu    *sync.Mutex
	std   *log.Logger
	level Level
	json  bool
	base  map[string]any
}

func New(level Level, jsonFormat bool, app string) *Logger {
	base := map[string]any{}
	if strings.TrimSpace(app) != "" {
		base["app"] = strings.TrimSpace(app)
	}
	return &Logger{
		mu:    &sync.Mutex{},
		std:   log.New(os.Stdout, "", 0),
		level: level,
		json:  jsonFormat,
		base:  base,
	}
}

// NewFromEnv crea el logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME (opcional)
func NewFromEnv() *Logger {
	return New(
		ParseLevel(os.Getenv("LOG_LEVEL")),
		strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "json"),
		os.Getenv("APP_NAME"),
	)
}

// With devuelve un logger hijo con campos fijos adicionales.
func (l *Logger) With(kv ...any) *Logger {
	if l == nil || len(kv) == 0 {
		return l
	}
	merged := map[string]any{}
	for k, v := range l.base {
		merged[k] = v
	}
	mergePairs(merged, kv)
	return &Logger{mu: l.mu, std: l.std, level: l.level, json: l.json, base: merged}
}

func (l *Logger) Debug(msg string, kv ...any) { l.log(Debug, msg, kv) }
func (l *Logger) Info(msg string, kv ...any)  { l.log(Info, msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)  { l.log(Warn, msg, kv) }
func (l *Logger) Error(msg string, kv ...any) { l.log(Error, msg, kv) }

func (l *Logger) log(lvl Level, msg string, kv []any) {
	if l == nil || lvl < l.level {
		return
	}

	entry := map[string]any{
		"ts":    time.Now().Format(time.RFC3339Nano),
		"level": lvl.String(),
		"msg":   msg,
	}
	for k, v := range l.base {
		entry[k] = v
	}
	mergePairs(entry, kv)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.json {
		b, _ := json.Marshal(entry)
		l.std.Println(string(b))
		return
	}
	l.std.Println(formatText(entry))
}

func mergePairs(dst map[string]any, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok || strings.TrimSpace(k) == "" {
			continue
		}
		dst[k] = kv[i+1]
	}
}

func formatText(m map[string]any) string {
	// Keys ordenadas para salida estable (útil en tests/logs).
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}
