package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Repositories bundles the collections backing the blog.
type Repositories struct {
	Users    *UserRepository
	Posts    *PostRepository
	Comments *CommentRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
	}
}

// EnsureIndexes creates the indexes of every collection. The unique user
// indexes must exist before the first signup is accepted.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	if err := r.Users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := r.Posts.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("posts indexes: %w", err)
	}
	if err := r.Comments.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("comments indexes: %w", err)
	}
	return nil
}
