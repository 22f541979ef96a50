package create_entry

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_entry: invalid input data")

	// ErrDateInPast возвращается при попытке добавить день раньше сегодняшнего
	ErrDateInPast = errors.New("create_entry: date is in the past")

	// ErrWindowFull возвращается, когда все дни окна уже заполнены
	ErrWindowFull = errors.New("create_entry: schedule window is full")

	// ErrDuplicateDate возвращается, когда на эту дату уже есть запись
	ErrDuplicateDate = errors.New("create_entry: entry for this date already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_entry: internal error")
)
