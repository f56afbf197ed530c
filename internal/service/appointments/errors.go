package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда агендирование не найдено
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrSupplierNotFound возвращается, когда поставщик агендирования не найден
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCannotDelete возвращается при попытке удалить агендирование с грузовиком на складе
	ErrCannotDelete = errors.New("appointment cannot be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
