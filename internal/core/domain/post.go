package domain

import "time"

// Post is a blog entry. Author fields are captured at creation time and are
// not a live reference to the User record.
type Post struct {
	ID             string    `json:"id" bson:"_id"`
	Title          string    `json:"title" bson:"title"`
	Content        string    `json:"content" bson:"content"`
	AuthorEmail    string    `json:"authorEmail" bson:"author_email"`
	AuthorUsername string    `json:"authorUsername" bson:"author_username"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
}

// Comment belongs to a Post through PostID. Deleting the post removes it.
type Comment struct {
	ID             string    `json:"id" bson:"_id"`
	PostID         string    `json:"postId" bson:"post_id"`
	Content        string    `json:"content" bson:"content"`
	AuthorEmail    string    `json:"authorEmail" bson:"author_email"`
	AuthorUsername string    `json:"authorUsername" bson:"author_username"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
}
