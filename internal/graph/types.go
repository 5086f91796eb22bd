package graph

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// Domain Entities
// ============================================================================

// User represents a user node in the graph
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"` // epoch milliseconds
}

// Post represents a post node in the graph. UserID is the creator, resolved
// through the CREATED relationship on reads.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UserID    string `json:"user_id"`
	CreatedAt int64  `json:"created_at"`
}

// Comment represents a comment node in the graph. UserID is the author,
// PostID the owning post, both resolved through relationships on reads.
type Comment struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	UserID    string `json:"user_id"`
	PostID    string `json:"post_id"`
	CreatedAt int64  `json:"created_at"`
}

// NewUser creates a User with a generated identifier and timestamp
func NewUser(name, email string) *User {
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// NewPost creates a Post with a generated identifier and timestamp
func NewPost(title, content, userID string) *Post {
	return &Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		UserID:    userID,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// NewComment creates a Comment with a generated identifier and timestamp
func NewComment(content, userID, postID string) *Comment {
	return &Comment{
		ID:        uuid.NewString(),
		Content:   content,
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now().UnixMilli(),
	}
}
