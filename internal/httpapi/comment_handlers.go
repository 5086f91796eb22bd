package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialgraph/internal/graph"
	errs "socialgraph/pkg/errors"
)

func (s *Server) listComments(c *gin.Context) {
	comments, err := s.comments.FindAll(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to list comments", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to list comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"comments": comments,
	})
}

func (s *Server) getComment(c *gin.Context) {
	id := c.Param("id")

	comment, err := s.comments.FindByID(c.Request.Context(), id)
	if err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Comment with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"comment": comment,
	})
}

func (s *Server) updateComment(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The field content is required")
		return
	}

	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Comment with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update comment")
		return
	}

	comment.Content = req.Content
	if err := s.comments.Save(ctx, comment); err != nil {
		s.logger.Error("Failed to update comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"comment": comment,
	})
}

func (s *Server) deleteComment(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if _, err := s.comments.FindByID(ctx, id); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Comment with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment deleted",
	})
}

func (s *Server) likeComment(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The field user_id is required")
		return
	}

	if !s.checkCommentLikeEndpoints(c, req.UserID, id) {
		return
	}

	if _, err := s.comments.Like(ctx, req.UserID, id); err != nil {
		s.logger.Error("Failed to like comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to like comment")
		return
	}

	count, err := s.comments.GetLikesCount(ctx, id)
	if err != nil {
		s.logger.Error("Failed to count likes", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to like comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"likes_count": count,
	})
}

func (s *Server) unlikeComment(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The field user_id is required")
		return
	}

	if !s.checkCommentLikeEndpoints(c, req.UserID, id) {
		return
	}

	if err := s.comments.Unlike(ctx, req.UserID, id); err != nil {
		s.logger.Error("Failed to unlike comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to unlike comment")
		return
	}

	count, err := s.comments.GetLikesCount(ctx, id)
	if err != nil {
		s.logger.Error("Failed to count likes", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to unlike comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"likes_count": count,
	})
}

func (s *Server) getPostComments(c *gin.Context) {
	postID := c.Param("id")
	ctx := c.Request.Context()

	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Post with ID %s not found", postID))
			return
		}
		s.logger.Error("Failed to get post", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get comments")
		return
	}

	comments, err := s.comments.FindByPost(ctx, postID)
	if err != nil {
		s.logger.Error("Failed to get post comments", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"comments": comments,
	})
}

func (s *Server) createComment(c *gin.Context) {
	postID := c.Param("id")

	var req struct {
		Content string `json:"content" binding:"required"`
		UserID  string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The fields content and user_id are required")
		return
	}

	comment := graph.NewComment(req.Content, req.UserID, postID)
	if err := s.comments.Save(c.Request.Context(), comment); err != nil {
		var iv *errs.IntegrityError
		if errors.As(err, &iv) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("%s with ID %s not found", iv.Kind, iv.ID))
			return
		}
		s.logger.Error("Failed to create comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"comment": comment,
	})
}

// checkCommentLikeEndpoints verifies the liking user and liked comment both
// exist, writing the error response itself
func (s *Server) checkCommentLikeEndpoints(c *gin.Context, userID, commentID string) bool {
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

	if _, err := s.comments.FindByID(ctx, commentID); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Comment with ID %s not found", commentID))
			return false
		}
		s.logger.Error("Failed to get comment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to process like")
		return false
	}

	return true
}
