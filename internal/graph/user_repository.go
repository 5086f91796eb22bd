package graph

import (
	"context"

	"go.uber.org/zap"

	errs "socialgraph/pkg/errors"
	"socialgraph/pkg/logger"
)

// ============================================================================
// User Repository
// ============================================================================

// UserRepository handles User nodes and FRIENDS_WITH relationships
type UserRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{
		store:  store,
		logger: logger.Get(),
	}
}

// Save creates or updates a user node, keyed by id. Idempotent: re-saving
// overwrites properties and preserves the identifier.
func (r *UserRepository) Save(ctx context.Context, user *User) error {
	query := `
		MERGE (u:User {id: $id})
		SET u.name = $name,
		    u.email = $email,
		    u.created_at = $createdAt
		RETURN u.id as id
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"createdAt": user.CreatedAt,
	})
	if err != nil {
		return err
	}

	r.logger.Debug("User saved", zap.String("user_id", user.ID))
	return nil
}

// FindByID finds a user by id. Absence is signaled as a NotFoundError.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `
		MATCH (u:User {id: $id})
		RETURN u
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errs.NewNotFound(errs.KindUser, id)
	}

	node, ok := getNodeFromRecord(records[0], "u")
	if !ok {
		return nil, errs.NewNotFound(errs.KindUser, id)
	}
	user := userFromNode(node)
	return &user, nil
}

// FindAll returns all users, newest first
func (r *UserRepository) FindAll(ctx context.Context) ([]User, error) {
	query := `
		MATCH (u:User)
		RETURN u
		ORDER BY u.created_at DESC
	`

	records, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	return usersFromRecords(records, "u"), nil
}

// Delete removes a user node together with all incident relationships.
// Deleting an absent user is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query := `
		MATCH (u:User {id: $id})
		DETACH DELETE u
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{"id": id})
	if err != nil {
		return err
	}

	r.logger.Debug("User deleted", zap.String("user_id", id))
	return nil
}

// AddFriend creates a FRIENDS_WITH relationship between two users. The
// pattern is undirected so re-adding in either order converges on the same
// edge. Returns false without error when either endpoint is missing.
func (r *UserRepository) AddFriend(ctx context.Context, id, friendID string) (bool, error) {
	query := `
		MATCH (u1:User {id: $id}), (u2:User {id: $friendId})
		MERGE (u1)-[r:FRIENDS_WITH]-(u2)
		RETURN r
	`

	records, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":       id,
		"friendId": friendID,
	})
	if err != nil {
		return false, err
	}

	return len(records) > 0, nil
}

// RemoveFriend deletes the FRIENDS_WITH relationship in either direction.
// Removing a relationship that does not exist is a no-op.
func (r *UserRepository) RemoveFriend(ctx context.Context, id, friendID string) error {
	query := `
		MATCH (u1:User {id: $id})-[r:FRIENDS_WITH]-(u2:User {id: $friendId})
		DELETE r
	`

	_, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"id":       id,
		"friendId": friendID,
	})
	return err
}

// GetFriends returns the users one FRIENDS_WITH hop away, either direction
func (r *UserRepository) GetFriends(ctx context.Context, id string) ([]User, error) {
	query := `
		MATCH (u:User {id: $id})-[:FRIENDS_WITH]-(friend:User)
		RETURN friend
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return usersFromRecords(records, "friend"), nil
}

// CheckFriendship reports whether two users are friends
func (r *UserRepository) CheckFriendship(ctx context.Context, id, otherID string) (bool, error) {
	query := `
		MATCH (u1:User {id: $id})-[r:FRIENDS_WITH]-(u2:User {id: $otherId})
		RETURN r
		LIMIT 1
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"id":      id,
		"otherId": otherID,
	})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// GetMutualFriends returns the users that are FRIENDS_WITH both endpoints.
// Callers are expected to reject id == otherID upstream.
func (r *UserRepository) GetMutualFriends(ctx context.Context, id, otherID string) ([]User, error) {
	query := `
		MATCH (u1:User {id: $id})-[:FRIENDS_WITH]-(mutual:User)-[:FRIENDS_WITH]-(u2:User {id: $otherId})
		RETURN DISTINCT mutual
	`

	records, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"id":      id,
		"otherId": otherID,
	})
	if err != nil {
		return nil, err
	}
	return usersFromRecords(records, "mutual"), nil
}
