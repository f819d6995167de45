package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

type stubCommentService struct {
	createFn func(ctx context.Context, author domain.IdentityClaims, postID, content string) (*domain.Comment, error)
	listFn   func(ctx context.Context, postID string) ([]*domain.Comment, error)
	mineFn   func(ctx context.Context, author domain.IdentityClaims) ([]*domain.Comment, error)
	deleteFn func(ctx context.Context, caller domain.IdentityClaims, id string) error
}

func (s *stubCommentService) CreateComment(ctx context.Context, author domain.IdentityClaims, postID, content string) (*domain.Comment, error) {
	return s.createFn(ctx, author, postID, content)
}

func (s *stubCommentService) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.listFn(ctx, postID)
}

func (s *stubCommentService) ListMyComments(ctx context.Context, author domain.IdentityClaims) ([]*domain.Comment, error) {
	return s.mineFn(ctx, author)
}

func (s *stubCommentService) DeleteComment(ctx context.Context, caller domain.IdentityClaims, id string) error {
	return s.deleteFn(ctx, caller, id)
}

func TestCommentHandler_Create(t *testing.T) {
	stub := &stubCommentService{
		createFn: func(ctx context.Context, author domain.IdentityClaims, postID, content string) (*domain.Comment, error) {
			if author != alice || postID != "p1" || content != "nice" {
				t.Fatalf("unexpected args: %+v %s %s", author, postID, content)
			}
			return &domain.Comment{ID: "c1", PostID: postID, Content: content, AuthorEmail: author.Email, AuthorUsername: author.Username}, nil
		},
	}

	c, rec := newJSONContext(http.MethodPost, "/api/comments", `{"content":"nice","postId":"p1"}`)
	if err := NewCommentHandler(stub).Create(asAlice(c)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "c1" || resp["postId"] != "p1" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestCommentHandler_Create_MissingPost(t *testing.T) {
	stub := &stubCommentService{
		createFn: func(ctx context.Context, author domain.IdentityClaims, postID, content string) (*domain.Comment, error) {
			return nil, domain.ErrPostNotFound
		},
	}

	c, _ := newJSONContext(http.MethodPost, "/api/comments", `{"content":"nice","postId":"gone"}`)
	if err := NewCommentHandler(stub).Create(asAlice(c)); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentHandler_Create_Validation(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/comments", `{"content":"nice"}`)
	if err := NewCommentHandler(&stubCommentService{}).Create(asAlice(c)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCommentHandler_ListByPost(t *testing.T) {
	stub := &stubCommentService{
		listFn: func(ctx context.Context, postID string) ([]*domain.Comment, error) {
			if postID != "p1" {
				t.Fatalf("unexpected post id %q", postID)
			}
			return []*domain.Comment{{ID: "c1"}, {ID: "c2"}}, nil
		},
	}

	c, rec := newJSONContext(http.MethodGet, "/api/comments/post/p1", "")
	c.SetParamNames("postId")
	c.SetParamValues("p1")
	if err := NewCommentHandler(stub).ListByPost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(resp))
	}
}

func TestCommentHandler_Delete_Forbidden(t *testing.T) {
	stub := &stubCommentService{
		deleteFn: func(ctx context.Context, caller domain.IdentityClaims, id string) error {
			if id != "c1" {
				t.Fatalf("unexpected id %q", id)
			}
			return domain.ErrNotAuthor
		},
	}

	c, _ := newJSONContext(http.MethodDelete, "/api/comments/c1", "")
	c.SetParamNames("commentId")
	c.SetParamValues("c1")
	if err := NewCommentHandler(stub).Delete(asAlice(c)); !errors.Is(err, domain.ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
}

func TestCommentHandler_Mine_RequiresClaims(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/api/comments/my-comments", "")
	if err := NewCommentHandler(&stubCommentService{}).Mine(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
