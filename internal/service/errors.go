package service

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(code, msg string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

// ErrConflict конструирует AppError для конфликтов записи (повтор, нет мест).
// Клиенту такие конфликты отдаются со статусом 400.
func ErrConflict(code, msg string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// ErrInternal оборачивает непредвиденную ошибку нижнего слоя.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status == http.StatusNotFound
	}
	return false
}

// IsConflict сообщает, является ли ошибка конфликтом записи.
func IsConflict(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code == CodeAlreadySignedUp || app.Code == CodeActivityFull
	}
	return false
}
