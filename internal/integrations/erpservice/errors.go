package erpservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("erpservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от ERP
	ErrInvalidResponse = errors.New("erpservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что ERP недоступна; check-in при этом не откатывается
	ErrServiceDegraded = errors.New("erpservice unavailable: graceful degradation applied")
)
