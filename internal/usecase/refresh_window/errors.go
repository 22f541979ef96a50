package refresh_window

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("refresh_window: invalid input data")

	// ErrFetchWindow возвращается, если окно не удалось загрузить. Запрос можно повторить.
	ErrFetchWindow = errors.New("refresh_window: failed to fetch window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("refresh_window: internal error")
)
