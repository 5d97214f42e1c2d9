package service

import (
	"socialfeed/internal/config"
	"socialfeed/internal/repository"
	"socialfeed/internal/storage"
)

// Notifier — приемник событий об изменениях постов для рассылки
// подключенным realtime-клиентам.
type Notifier interface {
	Broadcast(event string, payload interface{})
}

type Service struct {
	User UserService
	Post PostService
	Auth AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, notifier Notifier) *Service {
	return &Service{
		User: NewUserService(rep.User, storage, cfg),
		Post: NewPostService(rep.Post, notifier),
		Auth: NewAuthService(rep.User, cfg),
	}
}
