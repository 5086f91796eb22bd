package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"socialgraph/internal/graph"
	"socialgraph/pkg/config"
	"socialgraph/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "Wipe the database before seeding")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Neo4j driver
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	store := graph.NewStore(driver)

	if *reset {
		log.Info("Resetting database...")
		if _, err := store.ExecuteWrite(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
			log.Fatal("Failed to reset database", zap.Error(err))
		}
	}

	log.Info("Ensuring constraints...")
	if err := store.EnsureConstraints(ctx); err != nil {
		log.Warn("Failed to ensure some constraints (may already exist)", zap.Error(err))
	}

	userRepo := graph.NewUserRepository(store)
	postRepo := graph.NewPostRepository(store)
	commentRepo := graph.NewCommentRepository(store)

	// Users
	alice := graph.NewUser("Alice Martin", "alice@example.com")
	bob := graph.NewUser("Bob Dupont", "bob@example.com")
	charlie := graph.NewUser("Charlie Garcia", "charlie@example.com")
	dave := graph.NewUser("Dave Johnson", "dave@example.com")
	eve := graph.NewUser("Eve Wilson", "eve@example.com")

	for _, user := range []*graph.User{alice, bob, charlie, dave, eve} {
		if err := userRepo.Save(ctx, user); err != nil {
			log.Fatal("Failed to save user", zap.String("name", user.Name), zap.Error(err))
		}
	}
	log.Info("Users created", zap.Int("count", 5))

	// Friendships
	friendships := [][2]*graph.User{
		{alice, bob},
		{alice, charlie},
		{bob, dave},
		{charlie, eve},
		{dave, eve},
		{bob, charlie}, // gives Alice and Bob a mutual friend
	}
	for _, pair := range friendships {
		if _, err := userRepo.AddFriend(ctx, pair[0].ID, pair[1].ID); err != nil {
			log.Fatal("Failed to create friendship", zap.Error(err))
		}
	}
	log.Info("Friendships created", zap.Int("count", len(friendships)))

	// Posts
	post1 := graph.NewPost(
		"Introduction to Neo4j",
		"Neo4j is a graph database that makes modeling complex relationships natural.",
		alice.ID,
	)
	post2 := graph.NewPost(
		"Building REST APIs in Go",
		"Gin is a small, fast framework that makes building RESTful APIs straightforward.",
		bob.ID,
	)
	post3 := graph.NewPost(
		"Social networks and graph databases",
		"Graph databases like Neo4j are a perfect fit for social network features.",
		charlie.ID,
	)

	for _, post := range []*graph.Post{post1, post2, post3} {
		if err := postRepo.Save(ctx, post); err != nil {
			log.Fatal("Failed to save post", zap.String("title", post.Title), zap.Error(err))
		}
	}
	log.Info("Posts created", zap.Int("count", 3))

	// Comments
	comments := []*graph.Comment{
		graph.NewComment("Great article on Neo4j, I learned a lot.", bob.ID, post1.ID),
		graph.NewComment("I have been using Gin for years, it is excellent.", alice.ID, post2.ID),
		graph.NewComment("You are absolutely right about Neo4j and social networks.", eve.ID, post3.ID),
		graph.NewComment("Do you have concrete examples of use cases?", dave.ID, post1.ID),
	}
	for _, comment := range comments {
		if err := commentRepo.Save(ctx, comment); err != nil {
			log.Fatal("Failed to save comment", zap.Error(err))
		}
	}
	log.Info("Comments created", zap.Int("count", len(comments)))

	// Likes are independent writes, so they can run concurrently
	group, groupCtx := errgroup.WithContext(ctx)

	postLikes := []struct {
		user *graph.User
		post *graph.Post
	}{
		{bob, post1}, {charlie, post1}, {dave, post1},
		{alice, post2}, {charlie, post2},
		{alice, post3}, {bob, post3}, {dave, post3}, {eve, post3},
	}
	for _, like := range postLikes {
		like := like
		group.Go(func() error {
			_, err := postRepo.Like(groupCtx, like.user.ID, like.post.ID)
			return err
		})
	}

	commentLikes := []struct {
		user    *graph.User
		comment *graph.Comment
	}{
		{alice, comments[0]}, {charlie, comments[0]},
		{bob, comments[1]}, {charlie, comments[1]},
		{charlie, comments[2]},
		{alice, comments[3]}, {charlie, comments[3]},
	}
	for _, like := range commentLikes {
		like := like
		group.Go(func() error {
			_, err := commentRepo.Like(groupCtx, like.user.ID, like.comment.ID)
			return err
		})
	}

	if err := group.Wait(); err != nil {
		log.Fatal("Failed to create likes", zap.Error(err))
	}
	log.Info("Likes created",
		zap.Int("post_likes", len(postLikes)),
		zap.Int("comment_likes", len(commentLikes)),
	)

	log.Info("Seeding complete",
		zap.String("alice", alice.ID),
		zap.String("bob", bob.ID),
		zap.String("charlie", charlie.ID),
		zap.String("dave", dave.ID),
		zap.String("eve", eve.ID),
	)
}
