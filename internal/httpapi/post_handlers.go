package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialgraph/internal/graph"
	errs "socialgraph/pkg/errors"
)

func (s *Server) listPosts(c *gin.Context) {
	posts, err := s.posts.FindAll(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to list posts", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"posts":  posts,
	})
}

func (s *Server) getPost(c *gin.Context) {
	id := c.Param("id")

	post, err := s.posts.FindByID(c.Request.Context(), id)
	if err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Post with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"post":   post,
	})
}

func (s *Server) updatePost(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Post with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}

	if err := s.posts.Save(ctx, post); err != nil {
		s.logger.Error("Failed to update post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"post":   post,
	})
}

func (s *Server) deletePost(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if _, err := s.posts.FindByID(ctx, id); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Post with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Post deleted",
	})
}

func (s *Server) likePost(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The field user_id is required")
		return
	}

	if !s.checkPostLikeEndpoints(c, req.UserID, id) {
		return
	}

	if _, err := s.posts.Like(ctx, req.UserID, id); err != nil {
		s.logger.Error("Failed to like post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to like post")
		return
	}

	count, err := s.posts.GetLikesCount(ctx, id)
	if err != nil {
		s.logger.Error("Failed to count likes", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to like post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"likes_count": count,
	})
}

func (s *Server) unlikePost(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The field user_id is required")
		return
	}

	if !s.checkPostLikeEndpoints(c, req.UserID, id) {
		return
	}

	if err := s.posts.Unlike(ctx, req.UserID, id); err != nil {
		s.logger.Error("Failed to unlike post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to unlike post")
		return
	}

	count, err := s.posts.GetLikesCount(ctx, id)
	if err != nil {
		s.logger.Error("Failed to count likes", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to unlike post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"likes_count": count,
	})
}

func (s *Server) getPostLikes(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if _, err := s.posts.FindByID(ctx, id); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Post with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get likes")
		return
	}

	count, err := s.posts.GetLikesCount(ctx, id)
	if err != nil {
		s.logger.Error("Failed to count likes", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get likes")
		return
	}

	likedBy, err := s.posts.GetLikedBy(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get liked-by users", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get likes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"likes_count": count,
		"liked_by":    likedBy,
	})
}

func (s *Server) getUserPosts(c *gin.Context) {
	userID := c.Param("id")
	ctx := c.Request.Context()

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", userID))
			return
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get posts")
		return
	}

	posts, err := s.posts.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get user posts", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"posts":  posts,
	})
}

func (s *Server) createPost(c *gin.Context) {
	userID := c.Param("id")

	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The fields title and content are required")
		return
	}

	post := graph.NewPost(req.Title, req.Content, userID)
	if err := s.posts.Save(c.Request.Context(), post); err != nil {
		if errs.IsIntegrity(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", userID))
			return
		}
		s.logger.Error("Failed to create post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"post":   post,
	})
}

// checkPostLikeEndpoints verifies the liking user and liked post both exist,
// writing the error response itself. Returns false when the request is done.
func (s *Server) checkPostLikeEndpoints(c *gin.Context, userID, postID string) bool {
	ctx := c.Request.Context()

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", userID))
			return false
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to process like")
		return false
	}

	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Post with ID %s not found", postID))
			return false
		}
		s.logger.Error("Failed to get post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to process like")
		return false
	}

	return true
}
