package domain

import "errors"

var (
	// ErrInvalidEntry базовая ошибка валидации записи рабочих часов
	ErrInvalidEntry = errors.New("domain: invalid working hours entry")

	// ErrInvalidPolicy возвращается для неизвестной политики сопровождения окна
	ErrInvalidPolicy = errors.New("domain: unknown schedule policy")
)
