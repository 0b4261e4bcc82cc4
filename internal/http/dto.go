// Package http реализует HTTP-обработчики и DTO поверх сервиса реестра.
package http

// errorResponse несёт detail для фронтенда и структурированный блок error.
type errorResponse struct {
	Detail string    `json:"detail"`
	Error  errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}
