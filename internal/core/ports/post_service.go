package ports

import (
	"context"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

// PostInput is the editable part of a post.
type PostInput struct {
	Title   string
	Content string
}

// ListPostsResult is one page of the public listing.
type ListPostsResult struct {
	Items      []*domain.Post
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// PostService defines use-case operations for posts. Mutations are gated by
// domain.AuthorizeMutation against the caller's claims.
type PostService interface {
	CreatePost(ctx context.Context, author domain.IdentityClaims, input PostInput) (*domain.Post, error)
	ListPosts(ctx context.Context, page, size int) (*ListPostsResult, error)
	ListMyPosts(ctx context.Context, author domain.IdentityClaims) ([]*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	UpdatePost(ctx context.Context, caller domain.IdentityClaims, id string, input PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, caller domain.IdentityClaims, id string) error
}
