package logger

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOutput := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(oldOutput) })
	return &buf
}

func TestLogger(t *testing.T) {
	buf := captureLog(t)
	ctx := context.Background()

	t.Run("Info", func(t *testing.T) {
		buf.Reset()
		Info(ctx, "Песня добавлена")
		if !strings.Contains(buf.String(), "[INFO] Песня добавлена") {
			t.Errorf("Неверный формат лога Info: %s", buf.String())
		}
	})

	t.Run("Error with error", func(t *testing.T) {
		buf.Reset()
		Error(ctx, errors.New("нет соединения"), "Не удалось прочитать задачи")
		if !strings.Contains(buf.String(), "[ERROR] Не удалось прочитать задачи: нет соединения") {
			t.Errorf("Неверный формат лога Error: %s", buf.String())
		}
	})

	t.Run("Error with nil error", func(t *testing.T) {
		buf.Reset()
		Error(ctx, nil, "Список музыки заменен")
		if !strings.Contains(buf.String(), "[ERROR] Список музыки заменен") {
			t.Errorf("Error с nil-ошибкой записан неверно: %s", buf.String())
		}
	})

	t.Run("Debug shown at LevelDebug", func(t *testing.T) {
		buf.Reset()
		SetLevel(LevelDebug)
		defer SetLevel(LevelInfo)

		Debug(ctx, "Задача 7 удалена")
		if !strings.Contains(buf.String(), "[DEBUG] Задача 7 удалена") {
			t.Errorf("При LevelDebug строка DEBUG не записана: %s", buf.String())
		}
	})

	t.Run("Debug hidden at LevelInfo", func(t *testing.T) {
		buf.Reset()
		SetLevel(LevelInfo)

		Debug(ctx, "Строка задачи прочитана")
		if buf.String() != "" {
			t.Errorf("При LevelInfo строка DEBUG попала в лог: %s", buf.String())
		}
	})

	t.Run("Error level hides Info", func(t *testing.T) {
		buf.Reset()
		SetLevel(LevelError)
		defer SetLevel(LevelInfo)

		Info(ctx, "скрыто")
		if buf.String() != "" {
			t.Errorf("Info не должен логироваться при LevelError: %s", buf.String())
		}
	})
}

func TestLoggerWithFields(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "req-1")
	Info(ctx, "Запрос обработан", "path", "/tasks/", "status", 200, "lonely")

	output := buf.String()
	for _, want := range []string{
		"[INFO] Запрос обработан",
		"request_id=req-1",
		"path=/tasks/",
		"status=200",
		"lonely=?",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("В логе нет %q: %s", want, output)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		"":      LevelInfo,
		"error": LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, ожидалось %v", in, got, want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("Ожидалась ошибка для неизвестного уровня")
	}
}
