package ports

import (
	"context"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

type CommentService interface {
	CreateComment(ctx context.Context, author domain.IdentityClaims, postID, content string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	ListMyComments(ctx context.Context, author domain.IdentityClaims) ([]*domain.Comment, error)
	DeleteComment(ctx context.Context, caller domain.IdentityClaims, id string) error
}
