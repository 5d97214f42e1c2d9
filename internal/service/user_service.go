package service

import (
	"context"
	"fmt"
	"io"

	"socialfeed/internal/config"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
	"socialfeed/internal/storage"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.PublicUser, error)
	UpdateProfile(ctx context.Context, userID string, req repository.UpdateUserRequest) (*models.PublicUser, error)
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.PublicUser, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// UpdateProfile обновляет только аккаунт самого субъекта: userID берется из
// проверенного токена, другого пути обновления нет. Новый пароль
// перехешируется в репозитории.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req repository.UpdateUserRequest) (*models.PublicUser, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// merge non-nil fields
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	newPassword := ""
	if req.Password != nil {
		newPassword = *req.Password
	}

	err = s.userRepo.UpdateUser(ctx, user, newPassword)
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

func (s *userService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.PublicUser, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	_, avatarURL, err := s.storage.UploadAvatar(ctx, userID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки аватара: %w", err)
	}

	user.ProfilePicture = avatarURL

	err = s.userRepo.UpdateUser(ctx, user, "")
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}
