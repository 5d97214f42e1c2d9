package app

import (
	"github.com/sirupsen/logrus"

	"socialfeed/internal/config"
	"socialfeed/internal/database"
	"socialfeed/internal/realtime"
	"socialfeed/internal/repository"
	"socialfeed/internal/service"
	"socialfeed/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service, *realtime.Hub) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logrus.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logrus.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// реестр realtime-подключений живет столько же, сколько процесс
	hub := realtime.NewHub()

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, hub)

	return db, services, hub
}
