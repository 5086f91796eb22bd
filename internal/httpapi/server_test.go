package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/internal/graph"
	errs "socialgraph/pkg/errors"
)

// ============================================================================
// Stub stores
// ============================================================================

type stubUserStore struct {
	users   map[string]*graph.User
	saved   []*graph.User
	friends map[string][]string
}

func newStubUserStore(users ...*graph.User) *stubUserStore {
	s := &stubUserStore{
		users:   make(map[string]*graph.User),
		friends: make(map[string][]string),
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUserStore) Save(_ context.Context, user *graph.User) error {
	s.users[user.ID] = user
	s.saved = append(s.saved, user)
	return nil
}

func (s *stubUserStore) FindByID(_ context.Context, id string) (*graph.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, errs.NewNotFound(errs.KindUser, id)
}

func (s *stubUserStore) FindAll(_ context.Context) ([]graph.User, error) {
	users := make([]graph.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *stubUserStore) Delete(_ context.Context, id string) error {
	delete(s.users, id)
	return nil
}

func (s *stubUserStore) AddFriend(_ context.Context, id, friendID string) (bool, error) {
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	if _, ok := s.users[friendID]; !ok {
		return false, nil
	}
	s.friends[id] = append(s.friends[id], friendID)
	s.friends[friendID] = append(s.friends[friendID], id)
	return true, nil
}

func (s *stubUserStore) RemoveFriend(_ context.Context, _, _ string) error { return nil }

func (s *stubUserStore) GetFriends(_ context.Context, id string) ([]graph.User, error) {
	friends := make([]graph.User, 0)
	for _, friendID := range s.friends[id] {
		if u, ok := s.users[friendID]; ok {
			friends = append(friends, *u)
		}
	}
	return friends, nil
}

func (s *stubUserStore) CheckFriendship(_ context.Context, id, otherID string) (bool, error) {
	for _, friendID := range s.friends[id] {
		if friendID == otherID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserStore) GetMutualFriends(_ context.Context, _, _ string) ([]graph.User, error) {
	return nil, nil
}

type stubPostStore struct {
	posts map[string]*graph.Post
	likes map[string]map[string]bool // post id -> user ids
}

func newStubPostStore(posts ...*graph.Post) *stubPostStore {
	s := &stubPostStore{
		posts: make(map[string]*graph.Post),
		likes: make(map[string]map[string]bool),
	}
	for _, p := range posts {
		s.posts[p.ID] = p
	}
	return s
}

func (s *stubPostStore) Save(_ context.Context, post *graph.Post) error {
	s.posts[post.ID] = post
	return nil
}

func (s *stubPostStore) FindByID(_ context.Context, id string) (*graph.Post, error) {
	if post, ok := s.posts[id]; ok {
		return post, nil
	}
	return nil, errs.NewNotFound(errs.KindPost, id)
}

func (s *stubPostStore) FindAll(_ context.Context) ([]graph.Post, error) {
	posts := make([]graph.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (s *stubPostStore) FindByUser(_ context.Context, _ string) ([]graph.Post, error) {
	return nil, nil
}

func (s *stubPostStore) Delete(_ context.Context, id string) error {
	delete(s.posts, id)
	return nil
}

func (s *stubPostStore) Like(_ context.Context, userID, postID string) (bool, error) {
	if _, ok := s.posts[postID]; !ok {
		return false, nil
	}
	if s.likes[postID] == nil {
		s.likes[postID] = make(map[string]bool)
	}
	s.likes[postID][userID] = true
	return true, nil
}

func (s *stubPostStore) Unlike(_ context.Context, userID, postID string) error {
	delete(s.likes[postID], userID)
	return nil
}

func (s *stubPostStore) GetLikesCount(_ context.Context, id string) (int64, error) {
	return int64(len(s.likes[id])), nil
}

func (s *stubPostStore) GetLikedBy(_ context.Context, _ string) ([]graph.User, error) {
	return nil, nil
}

type stubCommentStore struct {
	comments map[string]*graph.Comment
	saveErr  error
}

func newStubCommentStore(comments ...*graph.Comment) *stubCommentStore {
	s := &stubCommentStore{comments: make(map[string]*graph.Comment)}
	for _, c := range comments {
		s.comments[c.ID] = c
	}
	return s
}

func (s *stubCommentStore) Save(_ context.Context, comment *graph.Comment) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.comments[comment.ID] = comment
	return nil
}

func (s *stubCommentStore) FindByID(_ context.Context, id string) (*graph.Comment, error) {
	if comment, ok := s.comments[id]; ok {
		return comment, nil
	}
	return nil, errs.NewNotFound(errs.KindComment, id)
}

func (s *stubCommentStore) FindAll(_ context.Context) ([]graph.Comment, error) { return nil, nil }

func (s *stubCommentStore) FindByPost(_ context.Context, _ string) ([]graph.Comment, error) {
	return nil, nil
}

func (s *stubCommentStore) Delete(_ context.Context, id string) error {
	delete(s.comments, id)
	return nil
}

func (s *stubCommentStore) Like(_ context.Context, _, _ string) (bool, error) { return true, nil }
func (s *stubCommentStore) Unlike(_ context.Context, _, _ string) error       { return nil }
func (s *stubCommentStore) GetLikesCount(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

// ============================================================================
// Tests
// ============================================================================

func newTestRouter(users UserStore, posts PostStore, comments CommentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewServer(users, posts, comments).Router()
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(newStubUserStore(), newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestCreateUser(t *testing.T) {
	users := newStubUserStore()
	router := newTestRouter(users, newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "POST", "/api/users", gin.H{"name": "Alice", "email": "alice@example.com"})
	assert.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, users.saved, 1)
	assert.Equal(t, "Alice", users.saved[0].Name)
	assert.NotEmpty(t, users.saved[0].ID)
	assert.Positive(t, users.saved[0].CreatedAt)
}

func TestCreateUser_MissingFields(t *testing.T) {
	router := newTestRouter(newStubUserStore(), newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "POST", "/api/users", gin.H{"name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", decodeBody(t, w)["status"])
}

func TestGetUser_NotFound(t *testing.T) {
	router := newTestRouter(newStubUserStore(), newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "GET", "/api/users/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddFriend_Self(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	router := newTestRouter(newStubUserStore(alice), newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "POST", "/api/users/"+alice.ID+"/friends", gin.H{"friend_id": alice.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddFriend(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	bob := graph.NewUser("Bob", "bob@example.com")
	users := newStubUserStore(alice, bob)
	router := newTestRouter(users, newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "POST", "/api/users/"+alice.ID+"/friends", gin.H{"friend_id": bob.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "GET", "/api/users/"+alice.ID+"/friends/"+bob.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["are_friends"])
}

func TestAddFriend_MissingUser(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	router := newTestRouter(newStubUserStore(alice), newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "POST", "/api/users/"+alice.ID+"/friends", gin.H{"friend_id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMutualFriends_Self(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	router := newTestRouter(newStubUserStore(alice), newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "GET", "/api/users/"+alice.ID+"/mutual-friends/"+alice.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePost(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	posts := newStubPostStore()
	router := newTestRouter(newStubUserStore(alice), posts, newStubCommentStore())

	w := doRequest(router, "POST", "/api/users/"+alice.ID+"/posts",
		gin.H{"title": "Hello", "content": "World"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, posts.posts, 1)
}

func TestLikePost(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	bob := graph.NewUser("Bob", "bob@example.com")
	post := graph.NewPost("Hello", "World", alice.ID)
	router := newTestRouter(newStubUserStore(alice, bob), newStubPostStore(post), newStubCommentStore())

	w := doRequest(router, "POST", "/api/posts/"+post.ID+"/like", gin.H{"user_id": bob.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["likes_count"])

	w = doRequest(router, "DELETE", "/api/posts/"+post.ID+"/like", gin.H{"user_id": bob.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["likes_count"])
}

func TestLikePost_MissingPost(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	router := newTestRouter(newStubUserStore(alice), newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "POST", "/api/posts/missing/like", gin.H{"user_id": alice.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateComment_MissingPost(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	comments := newStubCommentStore()
	comments.saveErr = errs.NewIntegrityViolation(errs.KindPost, "missing")
	router := newTestRouter(newStubUserStore(alice), newStubPostStore(), comments)

	w := doRequest(router, "POST", "/api/posts/missing/comments",
		gin.H{"content": "hi", "user_id": alice.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "Post with ID missing not found")
	assert.Empty(t, comments.comments, "no comment may be created on integrity failure")
}

func TestDeleteUser(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	users := newStubUserStore(alice)
	router := newTestRouter(users, newStubPostStore(), newStubCommentStore())

	w := doRequest(router, "DELETE", "/api/users/"+alice.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, users.users)

	w = doRequest(router, "GET", "/api/users/"+alice.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePost(t *testing.T) {
	alice := graph.NewUser("Alice", "alice@example.com")
	post := graph.NewPost("Old title", "Old content", alice.ID)
	posts := newStubPostStore(post)
	router := newTestRouter(newStubUserStore(alice), posts, newStubCommentStore())

	w := doRequest(router, "PUT", "/api/posts/"+post.ID, gin.H{"title": "New title"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New title", posts.posts[post.ID].Title)
	assert.Equal(t, "Old content", posts.posts[post.ID].Content)
}
