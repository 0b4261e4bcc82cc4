package http

import (
	"net/url"

	"activity-roster-service/internal/service"
)

// EmailQuery достаёт обязательный query-параметр email.
// Ошибка только при отсутствии параметра; пустое или пробельное значение
// передаётся дальше без изменений, формат не проверяется.
func EmailQuery(query url.Values) (string, error) {
	values, ok := query["email"]
	if !ok || len(values) == 0 {
		return "", service.ErrBadRequest("email is required")
	}
	return values[0], nil
}
