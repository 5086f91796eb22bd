package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialgraph/internal/graph"
	"socialgraph/pkg/logger"
)

// UserStore is the user repository surface the handlers depend on
type UserStore interface {
	Save(ctx context.Context, user *graph.User) error
	FindByID(ctx context.Context, id string) (*graph.User, error)
	FindAll(ctx context.Context) ([]graph.User, error)
	Delete(ctx context.Context, id string) error
	AddFriend(ctx context.Context, id, friendID string) (bool, error)
	RemoveFriend(ctx context.Context, id, friendID string) error
	GetFriends(ctx context.Context, id string) ([]graph.User, error)
	CheckFriendship(ctx context.Context, id, otherID string) (bool, error)
	GetMutualFriends(ctx context.Context, id, otherID string) ([]graph.User, error)
}

// PostStore is the post repository surface the handlers depend on
type PostStore interface {
	Save(ctx context.Context, post *graph.Post) error
	FindByID(ctx context.Context, id string) (*graph.Post, error)
	FindAll(ctx context.Context) ([]graph.Post, error)
	FindByUser(ctx context.Context, userID string) ([]graph.Post, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, userID, postID string) (bool, error)
	Unlike(ctx context.Context, userID, postID string) error
	GetLikesCount(ctx context.Context, id string) (int64, error)
	GetLikedBy(ctx context.Context, id string) ([]graph.User, error)
}

// CommentStore is the comment repository surface the handlers depend on
type CommentStore interface {
	Save(ctx context.Context, comment *graph.Comment) error
	FindByID(ctx context.Context, id string) (*graph.Comment, error)
	FindAll(ctx context.Context) ([]graph.Comment, error)
	FindByPost(ctx context.Context, postID string) ([]graph.Comment, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, userID, commentID string) (bool, error)
	Unlike(ctx context.Context, userID, commentID string) error
	GetLikesCount(ctx context.Context, id string) (int64, error)
}

// Server holds the handler dependencies
type Server struct {
	users    UserStore
	posts    PostStore
	comments CommentStore
	logger   *zap.Logger
}

// NewServer creates a new API server
func NewServer(users UserStore, posts PostStore, comments CommentStore) *Server {
	return &Server{
		users:    users,
		posts:    posts,
		comments: comments,
		logger:   logger.Get(),
	}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(s.logger))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", s.listUsers)
			users.POST("", s.createUser)
			users.GET("/:id", s.getUser)
			users.PUT("/:id", s.updateUser)
			users.DELETE("/:id", s.deleteUser)

			users.GET("/:id/friends", s.getFriends)
			users.POST("/:id/friends", s.addFriend)
			users.GET("/:id/friends/:friendId", s.checkFriendship)
			users.DELETE("/:id/friends/:friendId", s.removeFriend)
			users.GET("/:id/mutual-friends/:otherId", s.getMutualFriends)

			users.GET("/:id/posts", s.getUserPosts)
			users.POST("/:id/posts", s.createPost)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", s.listPosts)
			posts.GET("/:id", s.getPost)
			posts.PUT("/:id", s.updatePost)
			posts.DELETE("/:id", s.deletePost)

			posts.POST("/:id/like", s.likePost)
			posts.DELETE("/:id/like", s.unlikePost)
			posts.GET("/:id/likes", s.getPostLikes)

			posts.GET("/:id/comments", s.getPostComments)
			posts.POST("/:id/comments", s.createComment)
		}

		comments := api.Group("/comments")
		{
			comments.GET("", s.listComments)
			comments.GET("/:id", s.getComment)
			comments.PUT("/:id", s.updateComment)
			comments.DELETE("/:id", s.deleteComment)

			comments.POST("/:id/like", s.likeComment)
			comments.DELETE("/:id/like", s.unlikeComment)
		}
	}

	return router
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}
