package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialgraph/internal/graph"
	errs "socialgraph/pkg/errors"
)

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.FindAll(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"users":  users,
	})
}

func (s *Server) createUser(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The fields name and email are required")
		return
	}

	user := graph.NewUser(req.Name, req.Email)
	if err := s.users.Save(c.Request.Context(), user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"user":   user,
	})
}

func (s *Server) getUser(c *gin.Context) {
	id := c.Param("id")

	user, err := s.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   user,
	})
}

func (s *Server) updateUser(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   user,
	})
}

func (s *Server) deleteUser(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted",
	})
}

func (s *Server) getFriends(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errs.IsNotFound(err) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", id))
			return
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get friends")
		return
	}

	friends, err := s.users.GetFriends(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get friends", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get friends")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"friends": friends,
	})
}

func (s *Server) addFriend(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req struct {
		FriendID string `json:"friend_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The field friend_id is required")
		return
	}

	if id == req.FriendID {
		respondError(c, http.StatusBadRequest, "A user cannot befriend themselves")
		return
	}

	for _, userID := range []string{id, req.FriendID} {
		if _, err := s.users.FindByID(ctx, userID); err != nil {
			if errs.IsNotFound(err) {
				respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", userID))
				return
			}
			s.logger.Error("Failed to get user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to add friend")
			return
		}
	}

	ok, err := s.users.AddFriend(ctx, id, req.FriendID)
	if err != nil {
		s.logger.Error("Failed to add friend", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to add friend")
		return
	}
	if !ok {
		respondError(c, http.StatusNotFound, "One of the users was not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Friendship created",
	})
}

func (s *Server) removeFriend(c *gin.Context) {
	id := c.Param("id")
	friendID := c.Param("friendId")

	if err := s.users.RemoveFriend(c.Request.Context(), id, friendID); err != nil {
		s.logger.Error("Failed to remove friend", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to remove friend")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Friendship removed",
	})
}

func (s *Server) checkFriendship(c *gin.Context) {
	id := c.Param("id")
	friendID := c.Param("friendId")

	areFriends, err := s.users.CheckFriendship(c.Request.Context(), id, friendID)
	if err != nil {
		s.logger.Error("Failed to check friendship", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to check friendship")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"are_friends": areFriends,
	})
}

func (s *Server) getMutualFriends(c *gin.Context) {
	id := c.Param("id")
	otherID := c.Param("otherId")
	ctx := c.Request.Context()

	if id == otherID {
		respondError(c, http.StatusBadRequest, "Cannot compute mutual friends of a user with themselves")
		return
	}

	for _, userID := range []string{id, otherID} {
		if _, err := s.users.FindByID(ctx, userID); err != nil {
			if errs.IsNotFound(err) {
				respondError(c, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", userID))
				return
			}
			s.logger.Error("Failed to get user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to get mutual friends")
			return
		}
	}

	mutual, err := s.users.GetMutualFriends(ctx, id, otherID)
	if err != nil {
		s.logger.Error("Failed to get mutual friends", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get mutual friends")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"mutual_friends": mutual,
	})
}
