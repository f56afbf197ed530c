package erpservice

// NotifyResponse модель ответа ERP на уведомление о прибытии
type NotifyResponse struct {
	Accepted  bool   `json:"accepted"`
	Reference string `json:"reference,omitempty"` // Внутренний номер документа в ERP
}

// ErrorResponse модель ошибки от ERP
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
