package graph

import (
	"context"

	"go.uber.org/zap"

	errs "socialgraph/pkg/errors"
	"socialgraph/pkg/logger"
)

// ============================================================================
// Post Repository
// ============================================================================

// PostRepository handles Post nodes and their CREATED/LIKES relationships
type PostRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewPostRepository creates a new post repository
func NewPostRepository(store *Store) *PostRepository {
	return &PostRepository{
		store:  store,
		logger: logger.Get(),
	}
}

// Save creates or updates a post node, keyed by id, and ensures the CREATED
// relationship from its author. The author must exist; the check runs before
// any write so a failed save leaves no node behind.
func (r *PostRepository) Save(ctx context.Context, post *Post) error {
	if err := r.checkUserExists(ctx, post.UserID); err != nil {
		return err
	}

	query := `
		MATCH (u:User {id: $userId})
		MERGE (p:Post {id: $id})
		SET p.title = $title,
		    p.content = $content,
		    p.created_at = $createdAt
		MERGE (u)-[r:CREATED]->(p)
		RETURN p.id as id
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":        post.ID,
		"title":     post.Title,
		"content":   post.Content,
		"createdAt": post.CreatedAt,
		"userId":    post.UserID,
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Post saved",
		zap.String("post_id", post.ID),
		zap.String("user_id", post.UserID),
	)
	return nil
}

// FindByID finds a post by id, with the creator id resolved through the
// CREATED relationship
func (r *PostRepository) FindByID(ctx context.Context, id string) (*Post, error) {
	query := `
		MATCH (p:Post {id: $id})
		OPTIONAL MATCH (u:User)-[:CREATED]->(p)
		RETURN p, u.id as user_id
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errs.NewNotFound(errs.KindPost, id)
	}

	post, ok := postFromRecord(records[0], "p")
	if !ok {
		return nil, errs.NewNotFound(errs.KindPost, id)
	}
	return &post, nil
}

// FindAll returns all posts, newest first
func (r *PostRepository) FindAll(ctx context.Context) ([]Post, error) {
	query := `
		MATCH (u:User)-[:CREATED]->(p:Post)
		RETURN p, u.id as user_id
		ORDER BY p.created_at DESC
	`

	records, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(records))
	for _, record := range records {
		if post, ok := postFromRecord(record, "p"); ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// FindByUser returns the posts authored by a user, newest first
func (r *PostRepository) FindByUser(ctx context.Context, userID string) ([]Post, error) {
	query := `
		MATCH (u:User {id: $userId})-[:CREATED]->(p:Post)
		RETURN p, u.id as user_id
		ORDER BY p.created_at DESC
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"userId": userID})
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(records))
	for _, record := range records {
		if post, ok := postFromRecord(record, "p"); ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// Delete removes a post, all its incident relationships, and its comment
// nodes. Comments cannot outlive their parent post. Deleting an absent post
// is a no-op.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	query := `
		MATCH (p:Post {id: $id})
		OPTIONAL MATCH (p)-[:HAS_COMMENT]->(c:Comment)
		DETACH DELETE p, c
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{"id": id})
	if err != nil {
		return err
	}

	r.logger.Debug("Post deleted", zap.String("post_id", id))
	return nil
}

// Like creates a LIKES relationship from a user to a post. MERGE makes the
// like a set-membership operation: liking twice leaves a single edge.
// Returns false without error when either endpoint is missing.
func (r *PostRepository) Like(ctx context.Context, userID, postID string) (bool, error) {
	query := `
		MATCH (u:User {id: $userId}), (p:Post {id: $postId})
		MERGE (u)-[r:LIKES]->(p)
		RETURN r
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"userId": userID,
		"postId": postID,
	})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// Unlike removes the LIKES relationship if present; a no-op otherwise
func (r *PostRepository) Unlike(ctx context.Context, userID, postID string) error {
	query := `
		MATCH (u:User {id: $userId})-[r:LIKES]->(p:Post {id: $postId})
		DELETE r
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"userId": userID,
		"postId": postID,
	})
	return err
}

// GetLikesCount returns the number of users that like a post
func (r *PostRepository) GetLikesCount(ctx context.Context, id string) (int64, error) {
	query := `
		MATCH (u:User)-[:LIKES]->(p:Post {id: $id})
		RETURN count(u) as likes_count
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	return getInt64FromRecord(records[0], "likes_count"), nil
}

// GetLikedBy returns the users that like a post
func (r *PostRepository) GetLikedBy(ctx context.Context, id string) ([]User, error) {
	query := `
		MATCH (u:User)-[:LIKES]->(p:Post {id: $id})
		RETURN u
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return usersFromRecords(records, "u"), nil
}

func (r *PostRepository) checkUserExists(ctx context.Context, userID string) error {
	query := `
		MATCH (u:User {id: $id})
		RETURN u.id as id
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": userID})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errs.NewIntegrityViolation(errs.KindUser, userID)
	}
	return nil
}
