package graph

import (
	"context"

	"go.uber.org/zap"
)

// EnsureConstraints creates the uniqueness constraints on entity identifiers.
// Safe to run repeatedly.
func (s *Store) EnsureConstraints(ctx context.Context) error {
	constraints := []string{
		"CREATE CONSTRAINT user_id_unique IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE",
		"CREATE CONSTRAINT post_id_unique IF NOT EXISTS FOR (p:Post) REQUIRE p.id IS UNIQUE",
		"CREATE CONSTRAINT comment_id_unique IF NOT EXISTS FOR (c:Comment) REQUIRE c.id IS UNIQUE",
	}

	for _, constraint := range constraints {
		if _, err := s.ExecuteWrite(ctx, constraint, nil); err != nil {
			return err
		}
		s.logger.Debug("Constraint ensured", zap.String("constraint", constraint))
	}

	return nil
}
