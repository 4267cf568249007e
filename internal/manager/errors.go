package manager

import (
	"errors"
	"fmt"
)

// ErrNotFound - запись по индексу или id отсутствует
var ErrNotFound = errors.New("не найдено")

// ValidationError - тело запроса не прошло проверку типов
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func required(field string, v *string) (string, error) {
	if v == nil {
		return "", &ValidationError{Field: field, Reason: "поле обязательно"}
	}
	return *v, nil
}
