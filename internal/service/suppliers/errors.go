package suppliers

import "errors"

var (
	// ErrSupplierNotFound возвращается, когда поставщик не найден
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrDuplicateTaxID возвращается, когда CNPJ уже зарегистрирован
	ErrDuplicateTaxID = errors.New("supplier tax id already registered")

	// ErrHasActiveAppointments возвращается при попытке удалить поставщика с активными агендированиями
	ErrHasActiveAppointments = errors.New("supplier has active appointments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
