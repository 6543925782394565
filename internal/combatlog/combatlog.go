// Package combatlog writes combat events as structured log lines.
package combatlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/samdwyer/rpsquest/internal/combat"
)

// Logger records combat events.
type Logger struct {
	log *zap.Logger
}

// New creates a logger appending JSON lines to path.
func New(path string) (*Logger, error) {
	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Development: false,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
		},
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build combat logger for %s: %w", path, err)
	}
	return Wrap(log.Named("combat")), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return Wrap(zap.NewNop())
}

// Wrap records through an existing zap logger.
func Wrap(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

// Start records the beginning of an encounter.
func (l *Logger) Start(player, enemy string) {
	l.log.Info("combat started",
		zap.String("attacker", player),
		zap.String("defender", enemy),
	)
}

// Record writes one line per event, in order.
func (l *Logger) Record(events []combat.Event) {
	for _, ev := range events {
		fields := []zap.Field{
			zap.String("kind", ev.Kind.String()),
			zap.Int("turn", ev.Turn),
			zap.String("attacker", ev.Attacker),
		}
		if ev.Defender != "" {
			fields = append(fields, zap.String("defender", ev.Defender))
		}
		if ev.Kind == combat.EventAttack {
			fields = append(fields,
				zap.Int("amount", ev.Amount),
				zap.Bool("critical", ev.Critical),
				zap.String("verdict", ev.Verdict.String()),
			)
		} else if ev.Amount != 0 {
			fields = append(fields, zap.Int("amount", ev.Amount))
		}
		l.log.Info(ev.Message, fields...)
	}
}

// End records how an encounter finished.
func (l *Logger) End(state combat.State, turns int) {
	l.log.Info("combat ended",
		zap.String("result", state.String()),
		zap.Int("turns", turns),
	)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.log.Sync()
}
