package http

import (
	"activity-board/internal/render"
	"activity-board/internal/service"
)

// ValidateRemoveTarget разбирает значение нажатой кнопки удаления.
// Кнопки рендерит сам фронтенд, поэтому пустые поля означают подделанный запрос.
func ValidateRemoveTarget(target string) (activity, email string, err error) {
	if target == "" {
		return "", "", service.ErrBadRequest("target is required")
	}
	activity, email, err = render.ParseRemoveTarget(target)
	if err != nil {
		return "", "", service.ErrBadRequest("target must be a url-encoded activity/email pair")
	}
	if activity == "" {
		return "", "", service.ErrBadRequest("target.activity is required")
	}
	if email == "" {
		return "", "", service.ErrBadRequest("target.email is required")
	}
	return activity, email, nil
}
