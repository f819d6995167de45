package ports

import (
	"context"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

// ListPostsFilter carries pagination for the public post listing.
type ListPostsFilter struct {
	Page int // 0-based
	Size int
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	// FindByID returns domain.ErrPostNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns a page of posts, newest first, and the total count.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	ListByAuthorEmail(ctx context.Context, email string) ([]*domain.Post, error)
	// Update replaces title and content; returns domain.ErrPostNotFound when absent.
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
}
