package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env     string // development -> consola legible; production -> JSON
	Level   string // trace, debug, info, warn, error, disabled
	Service string // se agrega como campo "service" si no está vacío
	// Output destino opcional (por defecto os.Stdout).
	Output io.Writer
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado. En development usa salida legible; en production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Output != nil {
		w = cfg.Output
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()

	log.Logger = zl
	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Nop logger que descarta todo (tests).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Component devuelve un sublogger con el campo "component" (ej. "adjustments", "migrate").
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// PgxTracer adapta el logger al tracer de pgx. Solo se registran consultas en level o superior.
func (l *Logger) PgxTracer(level string) *tracelog.TraceLog {
	lvl, err := tracelog.LogLevelFromString(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = tracelog.LogLevelWarn
	}
	return &tracelog.TraceLog{Logger: pgxAdapter{zl: l.zl.With().Str("component", "pgx").Logger()}, LogLevel: lvl}
}

type pgxAdapter struct {
	zl zerolog.Logger
}

func (a pgxAdapter) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var ev *zerolog.Event
	switch level {
	case tracelog.LogLevelTrace:
		ev = a.zl.Trace()
	case tracelog.LogLevelDebug:
		ev = a.zl.Debug()
	case tracelog.LogLevelInfo:
		ev = a.zl.Info()
	case tracelog.LogLevelWarn:
		ev = a.zl.Warn()
	default:
		ev = a.zl.Error()
	}
	ev.Fields(data).Msg(msg)
}
