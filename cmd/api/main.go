package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"socialfeed/cmd/app"
	"socialfeed/internal/config"
	handlers "socialfeed/internal/handler"
	"socialfeed/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		logrus.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, services, hub := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, hub, db, cfg)

	auth := middleware.Auth(handler.AuthService)

	// setting up routes
	r := mux.NewRouter()

	r.HandleFunc("/", handler.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/ws", handler.WS)

	r.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)

	// конкретные пути регистрируются раньше /api/users/{id}
	r.Handle("/api/users/profile", auth(http.HandlerFunc(handler.GetProfile))).Methods(http.MethodGet)
	r.Handle("/api/users/profile", auth(http.HandlerFunc(handler.UpdateProfile))).Methods(http.MethodPut)
	r.Handle("/api/users/avatar", auth(http.HandlerFunc(handler.UploadAvatar))).Methods(http.MethodPost)
	r.Handle("/api/users/posts", auth(http.HandlerFunc(handler.GetUserPosts))).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{id}", handler.GetUser).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	r.Handle("/api/posts", auth(http.HandlerFunc(handler.CreatePost))).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	r.Handle("/api/posts/{id}", auth(http.HandlerFunc(handler.UpdatePost))).Methods(http.MethodPut)
	r.Handle("/api/posts/{id}", auth(http.HandlerFunc(handler.DeletePost))).Methods(http.MethodDelete)
	r.Handle("/api/posts/{id}/comments", auth(http.HandlerFunc(handler.AddComment))).Methods(http.MethodPost)
	r.Handle("/api/posts/{id}/like", auth(http.HandlerFunc(handler.ToggleLike))).Methods(http.MethodPut)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logrus.WithFields(logrus.Fields{
		"addr":   addr,
		"dbname": cfg.DB.DbNAME,
	}).Info("Сервер запущен")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logrus.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
