package handlers

import (
	"github.com/go-playground/validator/v10"

	"socialfeed/internal/config"
	"socialfeed/internal/database"
	"socialfeed/internal/realtime"
	"socialfeed/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	UserService service.UserService
	PostService service.PostService
	Hub         *realtime.Hub
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, hub *realtime.Hub, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		UserService: services.User,
		PostService: services.Post,
		Hub:         hub,
		DB:          db,
		Cfg:         config,
		Validate:    validator.New(),
	}
}
