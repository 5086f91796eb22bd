package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ============================================================================
// Record Mapping
//
// Every entity is mapped field by field from a fixed record shape. There is
// no reflective property copying; unknown properties are ignored.
// ============================================================================

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getInt64FromRecord(record *neo4j.Record, key string) int64 {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	if i, ok := val.(int64); ok {
		return i
	}
	if i, ok := val.(int); ok {
		return int64(i)
	}
	return 0
}

func getNodeFromRecord(record *neo4j.Record, key string) (neo4j.Node, bool) {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return neo4j.Node{}, false
	}
	node, ok := val.(neo4j.Node)
	return node, ok
}

func getStringProp(node neo4j.Node, key string) string {
	if val, ok := node.Props[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getInt64Prop(node neo4j.Node, key string) int64 {
	if val, ok := node.Props[key]; ok {
		if i, ok := val.(int64); ok {
			return i
		}
		if i, ok := val.(int); ok {
			return int64(i)
		}
	}
	return 0
}

// userFromNode maps a User node onto the entity struct
func userFromNode(node neo4j.Node) User {
	return User{
		ID:        getStringProp(node, "id"),
		Name:      getStringProp(node, "name"),
		Email:     getStringProp(node, "email"),
		CreatedAt: getInt64Prop(node, "created_at"),
	}
}

// postFromRecord maps a record containing a Post node under nodeKey and the
// creator id under the user_id alias
func postFromRecord(record *neo4j.Record, nodeKey string) (Post, bool) {
	node, ok := getNodeFromRecord(record, nodeKey)
	if !ok {
		return Post{}, false
	}
	return Post{
		ID:        getStringProp(node, "id"),
		Title:     getStringProp(node, "title"),
		Content:   getStringProp(node, "content"),
		UserID:    getStringFromRecord(record, "user_id"),
		CreatedAt: getInt64Prop(node, "created_at"),
	}, true
}

// commentFromRecord maps a record containing a Comment node under nodeKey and
// the author/post ids under the user_id and post_id aliases
func commentFromRecord(record *neo4j.Record, nodeKey string) (Comment, bool) {
	node, ok := getNodeFromRecord(record, nodeKey)
	if !ok {
		return Comment{}, false
	}
	return Comment{
		ID:        getStringProp(node, "id"),
		Content:   getStringProp(node, "content"),
		UserID:    getStringFromRecord(record, "user_id"),
		PostID:    getStringFromRecord(record, "post_id"),
		CreatedAt: getInt64Prop(node, "created_at"),
	}, true
}

// usersFromRecords maps a list of records each carrying a User node under key
func usersFromRecords(records []*neo4j.Record, key string) []User {
	users := make([]User, 0, len(records))
	for _, record := range records {
		if node, ok := getNodeFromRecord(record, key); ok {
			users = append(users, userFromNode(node))
		}
	}
	return users
}
