package service

import (
	"fmt"

	"socialfeed/internal/apperrors"
)

// AuthorizeOwner разрешает мутацию, только если субъект и владелец ресурса
// совпадают. Отказ — это ErrPermission (403), а не ErrAuth (401): субъект
// уже аутентифицирован, но не владеет ресурсом.
func AuthorizeOwner(subject, owner string) error {
	if subject != owner {
		return fmt.Errorf("ресурс принадлежит другому пользователю: %w", apperrors.ErrPermission)
	}
	return nil
}
