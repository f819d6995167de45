package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
	MaxTitleLength  = 200
)

type PostService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewPostService(posts ports.PostRepository, comments ports.CommentRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, comments: comments, logger: logger, now: time.Now}
}

// CreatePost stores a new post authored by the caller. The author's email and
// username are copied from the claims.
func (s *PostService) CreatePost(ctx context.Context, author domain.IdentityClaims, input ports.PostInput) (*domain.Post, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:             uuid.NewString(),
		Title:          input.Title,
		Content:        input.Content,
		AuthorEmail:    author.Email,
		AuthorUsername: author.Username,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author", post.AuthorUsername).Msg("post created")
	return post, nil
}

// ListPosts returns one page of posts, newest first. page is zero-based;
// size defaults to DefaultPageSize and is capped at MaxPageSize.
func (s *PostService) ListPosts(ctx context.Context, page, size int) (*ports.ListPostsResult, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	items, total, err := s.posts.List(ctx, ports.ListPostsFilter{Page: page, Size: size})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if items == nil {
		items = []*domain.Post{}
	}

	return &ports.ListPostsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
	}, nil
}

func (s *PostService) ListMyPosts(ctx context.Context, author domain.IdentityClaims) ([]*domain.Post, error) {
	posts, err := s.posts.ListByAuthorEmail(ctx, author.Email)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// UpdatePost replaces title and content of a post owned by the caller.
// Existence and ownership are checked before the new content is validated.
func (s *PostService) UpdatePost(ctx context.Context, caller domain.IdentityClaims, id string, input ports.PostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeMutation(caller.Email, post.AuthorEmail); err != nil {
		s.logger.Warn().Str("post_id", id).Str("caller", caller.Username).Msg("update denied")
		return nil, err
	}
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post owned by the caller together with its comments.
func (s *PostService) DeletePost(ctx context.Context, caller domain.IdentityClaims, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeMutation(caller.Email, post.AuthorEmail); err != nil {
		s.logger.Warn().Str("post_id", id).Str("caller", caller.Username).Msg("delete denied")
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.comments.DeleteByPost(ctx, id)
	if err != nil {
		// The post is already gone; leftover comments are unreachable.
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to delete comments of post")
		return nil
	}

	s.logger.Info().Str("post_id", id).Int64("comments_removed", removed).Msg("post deleted")
	return nil
}

func validatePostInput(input ports.PostInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return domain.ErrMissingField
	}
	if utf8.RuneCountInString(input.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", domain.ErrValidation, MaxTitleLength)
	}
	return nil
}
