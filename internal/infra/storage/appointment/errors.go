package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда агендирование не найдено
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается при нарушении уникальности слота (date, time).
	// Страховка на уровне БД для гонки двух одновременных созданий.
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrNoTransition возвращается, когда условное обновление статуса не нашло
	// строку в ожидаемом исходном статусе
	ErrNoTransition = errors.New("appointment.repository: status transition not applicable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
