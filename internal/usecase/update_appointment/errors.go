package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда агендирование не найдено
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrNotEditable возвращается при включенной политике EnforceScheduledOnly,
	// когда агендирование уже прошло check-in
	ErrNotEditable = errors.New("update_appointment: appointment can no longer be edited")

	// ErrInvalidDate возвращается при некорректной дате агендирования (дата в прошлом)
	ErrInvalidDate = errors.New("update_appointment: invalid appointment date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в каталог слотов склада
	ErrInvalidTimeSlot = errors.New("update_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда целевой слот закрыт правилом или уже занят
	ErrSlotNotAvailable = errors.New("update_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
