package update_entry

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_entry: invalid input data")

	// ErrEntryNotFound возвращается, когда запись не найдена
	ErrEntryNotFound = errors.New("update_entry: entry not found")

	// ErrDuplicateDate возвращается при переносе записи на занятую дату
	ErrDuplicateDate = errors.New("update_entry: entry for this date already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_entry: internal error")
)
