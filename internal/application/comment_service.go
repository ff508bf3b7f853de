package application

import (
	"context"
	"errors"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
	"github.com/oksasatya/go-blog-platform/internal/domain/repository"
)

// CommentService guards comment CRUD with post-existence and ownership
// checks.
type CommentService struct {
	Comments repository.CommentRepository
	Posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{Comments: comments, Posts: posts}
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	if err := s.postExists(ctx, postID); err != nil {
		return nil, err
	}
	return s.Comments.ListByPost(ctx, postID)
}

func (s *CommentService) Add(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
	if err := s.postExists(ctx, postID); err != nil {
		return nil, err
	}
	c := &entity.Comment{PostID: postID, UserID: userID, Content: content}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, userID, commentID, content string) (*entity.Comment, error) {
	c, err := s.owned(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.Comments.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}
	c.Content = content
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, userID, commentID string) (*entity.Comment, error) {
	c, err := s.owned(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.Comments.Delete(ctx, commentID); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) postExists(ctx context.Context, postID string) error {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidReference
		}
		return err
	}
	return nil
}

func (s *CommentService) owned(ctx context.Context, userID, commentID string) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrForbidden
	}
	return c, nil
}
