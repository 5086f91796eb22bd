package graph

import (
	"context"

	"go.uber.org/zap"

	errs "socialgraph/pkg/errors"
	"socialgraph/pkg/logger"
)

// ============================================================================
// Comment Repository
// ============================================================================

// CommentRepository handles Comment nodes and their CREATED/HAS_COMMENT/LIKES
// relationships
type CommentRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(store *Store) *CommentRepository {
	return &CommentRepository{
		store:  store,
		logger: logger.Get(),
	}
}

// Save creates or updates a comment node, keyed by id, and ensures the
// CREATED edge from its author and the HAS_COMMENT edge from its post. Both
// parents must exist; the checks run before any write so a failed save
// leaves no node behind.
func (r *CommentRepository) Save(ctx context.Context, comment *Comment) error {
	if err := r.checkParentExists(ctx, "User", errs.KindUser, comment.UserID); err != nil {
		return err
	}
	if err := r.checkParentExists(ctx, "Post", errs.KindPost, comment.PostID); err != nil {
		return err
	}

	query := `
		MATCH (u:User {id: $userId}), (p:Post {id: $postId})
		MERGE (c:Comment {id: $id})
		SET c.content = $content,
		    c.created_at = $createdAt
		MERGE (u)-[r1:CREATED]->(c)
		MERGE (p)-[r2:HAS_COMMENT]->(c)
		RETURN c.id as id
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":        comment.ID,
		"content":   comment.Content,
		"createdAt": comment.CreatedAt,
		"userId":    comment.UserID,
		"postId":    comment.PostID,
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Comment saved",
		zap.String("comment_id", comment.ID),
		zap.String("post_id", comment.PostID),
	)
	return nil
}

// FindByID finds a comment by id, with author and parent post resolved
// through their relationships
func (r *CommentRepository) FindByID(ctx context.Context, id string) (*Comment, error) {
	query := `
		MATCH (c:Comment {id: $id})
		OPTIONAL MATCH (u:User)-[:CREATED]->(c)
		OPTIONAL MATCH (p:Post)-[:HAS_COMMENT]->(c)
		RETURN c, u.id as user_id, p.id as post_id
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errs.NewNotFound(errs.KindComment, id)
	}

	comment, ok := commentFromRecord(records[0], "c")
	if !ok {
		return nil, errs.NewNotFound(errs.KindComment, id)
	}
	return &comment, nil
}

// FindAll returns all comments, newest first
func (r *CommentRepository) FindAll(ctx context.Context) ([]Comment, error) {
	query := `
		MATCH (u:User)-[:CREATED]->(c:Comment)<-[:HAS_COMMENT]-(p:Post)
		RETURN c, u.id as user_id, p.id as post_id
		ORDER BY c.created_at DESC
	`

	records, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(records))
	for _, record := range records {
		if comment, ok := commentFromRecord(record, "c"); ok {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// FindByPost returns the comments attached to a post, newest first
func (r *CommentRepository) FindByPost(ctx context.Context, postID string) ([]Comment, error) {
	query := `
		MATCH (p:Post {id: $postId})-[:HAS_COMMENT]->(c:Comment)
		MATCH (u:User)-[:CREATED]->(c)
		RETURN c, u.id as user_id, p.id as post_id
		ORDER BY c.created_at DESC
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"postId": postID})
	if err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(records))
	for _, record := range records {
		if comment, ok := commentFromRecord(record, "c"); ok {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// Delete removes a comment node together with all incident relationships.
// Deleting an absent comment is a no-op.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	query := `
		MATCH (c:Comment {id: $id})
		DETACH DELETE c
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{"id": id})
	if err != nil {
		return err
	}

	r.logger.Debug("Comment deleted", zap.String("comment_id", id))
	return nil
}

// Like creates a LIKES relationship from a user to a comment; idempotent.
// Returns false without error when either endpoint is missing.
func (r *CommentRepository) Like(ctx context.Context, userID, commentID string) (bool, error) {
	query := `
		MATCH (u:User {id: $userId}), (c:Comment {id: $commentId})
		MERGE (u)-[r:LIKES]->(c)
		RETURN r
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"userId":    userID,
		"commentId": commentID,
	})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// Unlike removes the LIKES relationship if present; a no-op otherwise
func (r *CommentRepository) Unlike(ctx context.Context, userID, commentID string) error {
	query := `
		MATCH (u:User {id: $userId})-[r:LIKES]->(c:Comment {id: $commentId})
		DELETE r
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"userId":    userID,
		"commentId": commentID,
	})
	return err
}

// GetLikesCount returns the number of users that like a comment
func (r *CommentRepository) GetLikesCount(ctx context.Context, id string) (int64, error) {
	query := `
		MATCH (u:User)-[:LIKES]->(c:Comment {id: $id})
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

func (r *CommentRepository) checkParentExists(ctx context.Context, label, kind, id string) error {
	query := `
		MATCH (n:` + label + ` {id: $id})
		RETURN n.id as id
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errs.NewIntegrityViolation(kind, id)
	}
	return nil
}
