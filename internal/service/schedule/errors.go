package schedule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = errors.New("schedule rule not found")

	// ErrInvalidTimeSlot возвращается, когда время не входит в каталог слотов склада
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
