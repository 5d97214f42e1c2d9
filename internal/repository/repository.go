package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialfeed/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User, newPassword string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*PostWithAuthor, error)
	GetAll(ctx context.Context) ([]PostWithAuthor, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]PostWithAuthor, error)
	Update(ctx context.Context, postID string, title, content *string) error
	Delete(ctx context.Context, postID string) error
	AddComment(ctx context.Context, comment *models.Comment) error
	GetComments(ctx context.Context, postID string) ([]CommentWithAuthor, error)
	GetLikes(ctx context.Context, postID string) ([]string, error)
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
}

type Repository struct {
	User UserRepository
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Post: NewPostRepository(db),
	}
}

// PostWithAuthor — строка posts вместе с публичными полями автора
type PostWithAuthor struct {
	models.Post
	AuthorUsername string `db:"author_username"`
	AuthorPicture  string `db:"author_picture"`
}

type CommentWithAuthor struct {
	models.Comment
	AuthorUsername string `db:"author_username"`
	AuthorPicture  string `db:"author_picture"`
}

// коды ошибок PostgreSQL
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isPQCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
