package graph

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func TestUserFromNode(t *testing.T) {
	node := neo4j.Node{Props: map[string]any{
		"id":         "u-1",
		"name":       "Alice Martin",
		"email":      "alice@example.com",
		"created_at": int64(1700000000000),
	}}

	user := userFromNode(node)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Alice Martin", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, int64(1700000000000), user.CreatedAt)
}

func TestUserFromNode_MissingProps(t *testing.T) {
	user := userFromNode(neo4j.Node{Props: map[string]any{"id": "u-2"}})
	assert.Equal(t, "u-2", user.ID)
	assert.Empty(t, user.Name)
	assert.Empty(t, user.Email)
	assert.Zero(t, user.CreatedAt)
}

func TestPostFromRecord(t *testing.T) {
	node := neo4j.Node{Props: map[string]any{
		"id":         "p-1",
		"title":      "Introduction to Neo4j",
		"content":    "Graphs all the way down.",
		"created_at": int64(1700000000001),
	}}
	record := &neo4j.Record{
		Keys:   []string{"p", "user_id"},
		Values: []any{node, "u-1"},
	}

	post, ok := postFromRecord(record, "p")
	assert.True(t, ok)
	assert.Equal(t, "p-1", post.ID)
	assert.Equal(t, "Introduction to Neo4j", post.Title)
	assert.Equal(t, "u-1", post.UserID)
	assert.Equal(t, int64(1700000000001), post.CreatedAt)
}

func TestPostFromRecord_NoNode(t *testing.T) {
	record := &neo4j.Record{
		Keys:   []string{"p", "user_id"},
		Values: []any{nil, "u-1"},
	}

	_, ok := postFromRecord(record, "p")
	assert.False(t, ok)
}

func TestCommentFromRecord(t *testing.T) {
	node := neo4j.Node{Props: map[string]any{
		"id":         "c-1",
		"content":    "Great article.",
		"created_at": int64(1700000000002),
	}}
	record := &neo4j.Record{
		Keys:   []string{"c", "user_id", "post_id"},
		Values: []any{node, "u-1", "p-1"},
	}

	comment, ok := commentFromRecord(record, "c")
	assert.True(t, ok)
	assert.Equal(t, "c-1", comment.ID)
	assert.Equal(t, "Great article.", comment.Content)
	assert.Equal(t, "u-1", comment.UserID)
	assert.Equal(t, "p-1", comment.PostID)
}

func TestUsersFromRecords_SkipsNonNodes(t *testing.T) {
	node := neo4j.Node{Props: map[string]any{"id": "u-1"}}
	records := []*neo4j.Record{
		{Keys: []string{"u"}, Values: []any{node}},
		{Keys: []string{"u"}, Values: []any{nil}},
	}

	users := usersFromRecords(records, "u")
	assert.Len(t, users, 1)
	assert.Equal(t, "u-1", users[0].ID)
}

func TestGetInt64FromRecord(t *testing.T) {
	record := &neo4j.Record{
		Keys:   []string{"likes_count"},
		Values: []any{int64(3)},
	}
	assert.Equal(t, int64(3), getInt64FromRecord(record, "likes_count"))
	assert.Zero(t, getInt64FromRecord(record, "missing"))
}

func TestNewEntities_GenerateIdentity(t *testing.T) {
	user := NewUser("Alice", "alice@example.com")
	assert.NotEmpty(t, user.ID)
	assert.Positive(t, user.CreatedAt)

	other := NewUser("Alice", "alice@example.com")
	assert.NotEqual(t, user.ID, other.ID, "identifiers must never collide")

	post := NewPost("title", "content", user.ID)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, user.ID, post.UserID)

	comment := NewComment("content", user.ID, post.ID)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)
}
