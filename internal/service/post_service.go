package service

import (
	"context"
	"fmt"
	"strings"

	"socialfeed/internal/apperrors"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

// события рассылки realtime-клиентам
const (
	EventPostCreated  = "post:created"
	EventPostUpdated  = "post:updated"
	EventPostDeleted  = "post:deleted"
	EventCommentAdded = "comment:added"
	EventLikeToggled  = "like:toggled"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID string, req repository.CreatePostRequest) (*models.PostView, error)
	GetPosts(ctx context.Context) ([]*models.PostView, error)
	GetPost(ctx context.Context, postID string) (*models.PostView, error)
	GetPostsByAuthor(ctx context.Context, authorID string) ([]*models.PostView, error)
	UpdatePost(ctx context.Context, subjectID, postID string, req repository.UpdatePostRequest) (*models.PostView, error)
	DeletePost(ctx context.Context, subjectID, postID string) error
	AddComment(ctx context.Context, subjectID, postID, text string) (*models.PostView, error)
	ToggleLike(ctx context.Context, subjectID, postID string) (*models.PostView, error)
}

type postService struct {
	postRepo repository.PostRepository
	notifier Notifier
}

func NewPostService(postRepo repository.PostRepository, notifier Notifier) PostService {
	return &postService{
		postRepo: postRepo,
		notifier: notifier,
	}
}

func (p *postService) CreatePost(ctx context.Context, authorID string, req repository.CreatePostRequest) (*models.PostView, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("отсутствует заголовок: %w", apperrors.ErrValidation)
	}

	post := &models.Post{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	view, err := p.GetPost(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	p.notifier.Broadcast(EventPostCreated, view)

	return view, nil
}

func (p *postService) GetPosts(ctx context.Context) ([]*models.PostView, error) {
	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return p.buildViews(ctx, posts)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.PostView, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return p.buildView(ctx, post)
}

func (p *postService) GetPostsByAuthor(ctx context.Context, authorID string) ([]*models.PostView, error) {
	posts, err := p.postRepo.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return p.buildViews(ctx, posts)
}

func (p *postService) UpdatePost(ctx context.Context, subjectID, postID string, req repository.UpdatePostRequest) (*models.PostView, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// менять пост может только автор
	if err := AuthorizeOwner(subjectID, post.AuthorID); err != nil {
		return nil, err
	}

	err = p.postRepo.Update(ctx, postID, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	view, err := p.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	p.notifier.Broadcast(EventPostUpdated, view)

	return view, nil
}

func (p *postService) DeletePost(ctx context.Context, subjectID, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := AuthorizeOwner(subjectID, post.AuthorID); err != nil {
		return err
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	p.notifier.Broadcast(EventPostDeleted, map[string]string{"postId": postID})

	return nil
}

// AddComment доступен любому аутентифицированному пользователю,
// владение постом не требуется.
func (p *postService) AddComment(ctx context.Context, subjectID, postID, text string) (*models.PostView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("пустой текст комментария: %w", apperrors.ErrValidation)
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: subjectID,
		Text:     text,
	}

	err := p.postRepo.AddComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	view, err := p.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	p.notifier.Broadcast(EventCommentAdded, view)

	return view, nil
}

func (p *postService) ToggleLike(ctx context.Context, subjectID, postID string) (*models.PostView, error) {
	_, err := p.postRepo.ToggleLike(ctx, postID, subjectID)
	if err != nil {
		return nil, err
	}

	view, err := p.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	p.notifier.Broadcast(EventLikeToggled, view)

	return view, nil
}

func (p *postService) buildViews(ctx context.Context, posts []repository.PostWithAuthor) ([]*models.PostView, error) {
	views := make([]*models.PostView, 0, len(posts))

	for i := range posts {
		view, err := p.buildView(ctx, &posts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (p *postService) buildView(ctx context.Context, post *repository.PostWithAuthor) (*models.PostView, error) {
	comments, err := p.postRepo.GetComments(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	likes, err := p.postRepo.GetLikes(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	commentViews := make([]models.CommentView, 0, len(comments))
	for _, c := range comments {
		commentViews = append(commentViews, models.CommentView{
			CommentID: c.CommentID,
			Author: models.AuthorView{
				UserID:         c.AuthorID,
				Username:       c.AuthorUsername,
				ProfilePicture: c.AuthorPicture,
			},
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}

	if likes == nil {
		likes = []string{}
	}

	return &models.PostView{
		PostID: post.PostID,
		Author: models.AuthorView{
			UserID:         post.AuthorID,
			Username:       post.AuthorUsername,
			ProfilePicture: post.AuthorPicture,
		},
		Title:     post.Title,
		Content:   post.Content,
		Comments:  commentViews,
		Likes:     likes,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}, nil
}
