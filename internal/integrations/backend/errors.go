package backend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultErrorMessage сообщение, если бэкенд не прислал свое
const DefaultErrorMessage = "API request failed"

var (
	// ErrNotFound возвращается, когда бэкенд ответил 404
	ErrNotFound = errors.New("backend: not found")

	// ErrConflict возвращается при попытке создать запись на уже занятую дату
	ErrConflict = errors.New("backend: duplicate entry")

	// ErrRequestFailed возвращается при любом другом не-2xx ответе
	ErrRequestFailed = errors.New("backend: request failed")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сериализация, лимитер)
	ErrInternal = errors.New("backend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("backend client: invalid response")
)

// APIError не-2xx ответ бэкенда
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: backend returned %d: %s", e.Operation, e.StatusCode, e.Message)
}

// Unwrap позволяет сравнивать через errors.Is с ErrNotFound / ErrConflict / ErrRequestFailed
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusConflict, isDuplicateMessage(e.Message):
		return ErrConflict
	default:
		return ErrRequestFailed
	}
}

// IsDuplicate сообщает, что запись на эту дату уже существует
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrConflict)
}

func isDuplicateMessage(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "already exist")
}
