package create_appointment

import "errors"

var (
	// ErrSupplierNotFound возвращается, когда поставщик не найден
	ErrSupplierNotFound = errors.New("create_appointment: supplier not found")

	// ErrSupplierInactive возвращается, когда поставщик деактивирован и не может бронировать
	ErrSupplierInactive = errors.New("create_appointment: supplier is inactive")

	// ErrInvalidDate возвращается при некорректной дате агендирования (дата в прошлом)
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в каталог слотов склада
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот закрыт правилом календаря или уже занят
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
