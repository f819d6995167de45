package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iustudy/blog-platform/internal/core/domain"
	"github.com/iustudy/blog-platform/internal/core/ports"
)

func newCommentSvc(t *testing.T) (*CommentService, *stubCommentRepo, *domain.Post) {
	t.Helper()
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	postSvc := NewPostService(posts, comments, discardLogger)

	post, err := postSvc.CreatePost(context.Background(), alice, ports.PostInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return NewCommentService(comments, posts, discardLogger), comments, post
}

func TestCommentService_Create_Success(t *testing.T) {
	svc, repo, post := newCommentSvc(t)

	comment, err := svc.CreateComment(context.Background(), bob, post.ID, "nice post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.ID == "" || comment.PostID != post.ID {
		t.Errorf("unexpected comment: %+v", comment)
	}
	if comment.AuthorEmail != bob.Email || comment.AuthorUsername != bob.Username {
		t.Errorf("author not captured from claims: %+v", comment)
	}
	if _, ok := repo.byID[comment.ID]; !ok {
		t.Error("comment was not stored")
	}
}

func TestCommentService_Create_PostNotFound(t *testing.T) {
	svc, repo, _ := newCommentSvc(t)

	_, err := svc.CreateComment(context.Background(), bob, "missing", "hello")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("nothing must be stored for a missing post")
	}
}

func TestCommentService_Create_Validation(t *testing.T) {
	svc, _, post := newCommentSvc(t)
	ctx := context.Background()

	if _, err := svc.CreateComment(ctx, bob, post.ID, "  "); !errors.Is(err, domain.ErrMissingField) {
		t.Errorf("blank content: expected ErrMissingField, got %v", err)
	}
	if _, err := svc.CreateComment(ctx, bob, "", "hello"); !errors.Is(err, domain.ErrMissingField) {
		t.Errorf("missing post id: expected ErrMissingField, got %v", err)
	}
}

func TestCommentService_ListByPost_OldestFirst(t *testing.T) {
	svc, _, post := newCommentSvc(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, text := range []string{"one", "two", "three"} {
		at := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return at }
		if _, err := svc.CreateComment(ctx, bob, post.ID, text); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := svc.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(list) != 3 || list[0].Content != "one" || list[2].Content != "three" {
		t.Fatalf("unexpected order: %+v", list)
	}

	empty, _ := svc.ListByPost(ctx, "other")
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil list, got %v", empty)
	}
}

func TestCommentService_ListMyComments(t *testing.T) {
	svc, _, post := newCommentSvc(t)
	ctx := context.Background()
	_, _ = svc.CreateComment(ctx, bob, post.ID, "b1")
	_, _ = svc.CreateComment(ctx, alice, post.ID, "a1")
	_, _ = svc.CreateComment(ctx, bob, post.ID, "b2")

	mine, err := svc.ListMyComments(ctx, bob)
	if err != nil {
		t.Fatalf("ListMyComments: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 comments for bob, got %d", len(mine))
	}
}

func TestCommentService_Delete_OwnerOnly(t *testing.T) {
	svc, repo, post := newCommentSvc(t)
	ctx := context.Background()
	comment, _ := svc.CreateComment(ctx, bob, post.ID, "mine")

	// The post author is not the comment author and gets no override.
	if err := svc.DeleteComment(ctx, alice, comment.ID); !errors.Is(err, domain.ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
	if _, ok := repo.byID[comment.ID]; !ok {
		t.Fatal("comment must survive a denied delete")
	}

	if err := svc.DeleteComment(ctx, bob, comment.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if err := svc.DeleteComment(ctx, bob, comment.ID); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound after delete, got %v", err)
	}
}
