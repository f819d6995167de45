package ports

import (
	"context"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	// FindByID returns domain.ErrCommentNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// ListByPost returns the comments of a post, oldest first.
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	ListByAuthorEmail(ctx context.Context, email string) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	// DeleteByPost removes every comment of a post and reports how many.
	DeleteByPost(ctx context.Context, postID string) (int64, error)
}
