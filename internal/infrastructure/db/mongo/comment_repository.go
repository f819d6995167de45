package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iustudy/blog-platform/internal/core/domain"
)

const collectionComments = "comments"

// CommentRepository implements ports.CommentRepository using MongoDB.
type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListByPost returns the comments of a post in the order they were written.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return r.find(ctx, bson.M{"post_id": postID}, 1)
}

func (r *CommentRepository) ListByAuthorEmail(ctx context.Context, email string) ([]*domain.Comment, error) {
	return r.find(ctx, bson.M{"author_email": email}, -1)
}

func (r *CommentRepository) find(ctx context.Context, filter bson.M, order int) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: order}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	defer cur.Close(ctx)

	comments := []*domain.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// DeleteByPost removes all comments attached to postID.
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("delete comments of post: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates necessary indexes on the comments collection.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "author_email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
