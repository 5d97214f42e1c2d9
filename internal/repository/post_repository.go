package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialfeed/internal/apperrors"
	"socialfeed/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

const postWithAuthorSelect = `
	SELECT p.post_id, p.author_id, p.title, p.content, p.created_at, p.updated_at,
	       u.username AS author_username, u.profile_picture AS author_picture
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
`

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
        INSERT INTO posts (post_id, author_id, title, content, created_at, updated_at)
        VALUES (:post_id, :author_id, :title, :content, :created_at, :updated_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isPQCode(err, pqForeignKeyViolation) {
			return fmt.Errorf("автор поста: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*PostWithAuthor, error) {
	query := postWithAuthorSelect + ` WHERE p.post_id = $1`

	var post PostWithAuthor
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]PostWithAuthor, error) {
	query := postWithAuthorSelect + ` ORDER BY p.created_at DESC`

	var posts []PostWithAuthor
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID string) ([]PostWithAuthor, error) {
	query := postWithAuthorSelect + ` WHERE p.author_id = $1 ORDER BY p.created_at DESC`

	var posts []PostWithAuthor
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

// Update меняет только контентные поля поста. author_id и created_at
// в запросе не участвуют, поэтому их нельзя изменить патчем.
func (r *PostRepositoryImpl) Update(ctx context.Context, postID string, title, content *string) error {
	query := `
		UPDATE posts SET
			title = COALESCE($1, title),
			content = COALESCE($2, content),
			updated_at = CURRENT_TIMESTAMP
		WHERE post_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, title, content, postID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
	}

	return nil
}

// Delete удаляет пост вместе с комментариями и лайками одной транзакцией.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("ошибка при удалении лайков: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("ошибка при удалении комментариев: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

// AddComment — атомарное добавление в конец списка комментариев.
// Порядок задает колонка seq, поэтому параллельные вставки не теряются.
func (r *PostRepositoryImpl) AddComment(ctx context.Context, comment *models.Comment) error {
	comment.CommentID = uuid.New().String()
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (comment_id, post_id, author_id, text, created_at)
		VALUES (:comment_id, :post_id, :author_id, :text, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		if isPQCode(err, pqForeignKeyViolation) {
			return fmt.Errorf("пост с ID %s: %w", comment.PostID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("ошибка при добавлении комментария: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetComments(ctx context.Context, postID string) ([]CommentWithAuthor, error) {
	query := `
		SELECT c.comment_id, c.post_id, c.author_id, c.text, c.seq, c.created_at,
		       u.username AS author_username, u.profile_picture AS author_picture
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.seq
	`

	var comments []CommentWithAuthor
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *PostRepositoryImpl) GetLikes(ctx context.Context, postID string) ([]string, error) {
	query := `SELECT user_id FROM likes WHERE post_id = $1`

	var likes []string
	err := r.db.SelectContext(ctx, &likes, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении лайков: %w", err)
	}

	return likes, nil
}

// ToggleLike — атомарное переключение членства в множестве лайков.
// DELETE и INSERT ON CONFLICT в одной транзакции: повторный toggle того же
// пользователя сходится к одному состоянию, а параллельные toggle разных
// пользователей не затирают друг друга. Возвращает true, если лайк поставлен.
func (r *PostRepositoryImpl) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("ошибка при снятии лайка: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	liked := false
	if deleted == 0 {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO likes (post_id, user_id) VALUES ($1, $2)
			ON CONFLICT (post_id, user_id) DO NOTHING
		`, postID, userID)
		if err != nil {
			if isPQCode(err, pqForeignKeyViolation) {
				return false, fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
			}
			return false, fmt.Errorf("ошибка при добавлении лайка: %w", err)
		}
		liked = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return liked, nil
}
