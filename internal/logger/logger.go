package logger

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var level atomic.Int32

func init() {
	level.Store(int32(LevelInfo))
}

type ctxKey struct{}

// SetLevel задает минимальный уровень вывода
func SetLevel(l Level) {
	level.Store(int32(l))
}

// ParseLevel переводит строку из конфигурации в уровень
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("неизвестный уровень логирования %q", s)
}

// WithRequestID кладет id запроса в контекст, он попадает в каждую строку лога
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID достает id запроса из контекста
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func Debug(ctx context.Context, msg string, kv ...any) {
	write(ctx, LevelDebug, "DEBUG", msg, kv)
}

func Info(ctx context.Context, msg string, kv ...any) {
	write(ctx, LevelInfo, "INFO", msg, kv)
}

func Error(ctx context.Context, err error, msg string, kv ...any) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	write(ctx, LevelError, "ERROR", msg, kv)
}

func write(ctx context.Context, l Level, tag, msg string, kv []any) {
	if l < Level(level.Load()) {
		return
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(tag)
	b.WriteString("] ")
	b.WriteString(msg)

	if ctx != nil {
		if id := RequestID(ctx); id != "" {
			b.WriteString(" request_id=")
			b.WriteString(id)
		}
	}

	for i := 0; i < len(kv); i += 2 {
		b.WriteString(" ")
		if i+1 < len(kv) {
			fmt.Fprintf(&b, "%v=%v", kv[i], kv[i+1])
		} else {
			// нечетное число аргументов
			fmt.Fprintf(&b, "%v=?", kv[i])
		}
	}

	log.Print(b.String())
}
