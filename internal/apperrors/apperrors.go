package apperrors

import "errors"

// Классы ошибок сервиса. Обработчики сопоставляют их с HTTP-статусами
// через errors.Is, поэтому ошибки можно оборачивать с %w на любом слое.
var (
	ErrValidation = errors.New("некорректные данные запроса")
	ErrConflict   = errors.New("нарушение уникальности")
	ErrAuth       = errors.New("ошибка аутентификации")
	ErrPermission = errors.New("доступ запрещен")
	ErrNotFound   = errors.New("не найдено")
	ErrInternal   = errors.New("внутренняя ошибка")
)
