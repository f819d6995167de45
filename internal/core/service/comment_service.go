package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, log: log, now: time.Now}
}

// CreateComment attaches a comment to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, author domain.IdentityClaims, postID, content string) (*domain.Comment, error) {
	if postID == "" || strings.TrimSpace(content) == "" {
		return nil, domain.ErrMissingField
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:             uuid.NewString(),
		PostID:         postID,
		Content:        content,
		AuthorEmail:    author.Email,
		AuthorUsername: author.Username,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info().Str("comment_id", comment.ID).Str("post_id", postID).Str("author", author.Username).Msg("comment created")
	return comment, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

func (s *CommentService) ListMyComments(ctx context.Context, author domain.IdentityClaims) ([]*domain.Comment, error) {
	comments, err := s.comments.ListByAuthorEmail(ctx, author.Email)
	if err != nil {
		return nil, fmt.Errorf("list comments by author: %w", err)
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

// DeleteComment removes a comment written by the caller.
func (s *CommentService) DeleteComment(ctx context.Context, caller domain.IdentityClaims, id string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeMutation(caller.Email, comment.AuthorEmail); err != nil {
		s.log.Warn().Str("comment_id", id).Str("caller", caller.Username).Msg("delete denied")
		return err
	}
	return s.comments.Delete(ctx, id)
}
