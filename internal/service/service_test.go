package service

import (
	"SocialBoard/internal/api/config"
	"SocialBoard/internal/api/dto"
	"SocialBoard/internal/pkg/database"
	"SocialBoard/internal/pkg/kafka"
	"SocialBoard/internal/repository"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*kafka.ChangeEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event *kafka.ChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Table+":"+e.Type)
	}
	return out
}

func (p *recordingPublisher) last() *kafka.ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return nil
	}
	return p.events[len(p.events)-1]
}

func strPtr(s string) *string { return &s }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, false)
}

func openTestDB(t *testing.T, foreignKeys bool) *gorm.DB {
	t.Helper()
	db, err := database.NewGormDB(&config.DBConfig{
		Driver:             database.DriverSQLite,
		Path:               filepath.Join(t.TempDir(), "svc.db"),
		EnforceForeignKeys: foreignKeys,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := NewUserService(repository.NewUserRepo(newTestDB(t), repository.SearchOptions{}), pub)

	created, err := svc.CreateUser(ctx, &dto.UserCreateDTO{Name: strPtr("carol"), ImageURL: strPtr("http://a/b.png")})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	t.Run("create then get yields same values", func(t *testing.T) {
		got, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.Equal(t, "carol", got.Name)
		assert.False(t, got.IsAdmin)
	})

	t.Run("missing user is NotFound", func(t *testing.T) {
		_, err := svc.GetUser(ctx, 9999)
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = svc.UpdateUser(ctx, 9999, &dto.UserCreateDTO{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = svc.PatchUserName(ctx, 9999, "x")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("patch name keeps other fields", func(t *testing.T) {
		got, err := svc.PatchUserName(ctx, created.ID, "caroline")
		require.NoError(t, err)
		assert.Equal(t, "caroline", got.Name)
		assert.Equal(t, created.IsAdmin, got.IsAdmin)
		assert.Equal(t, created.ImageURL, got.ImageURL)
	})

	t.Run("update event carries previous row", func(t *testing.T) {
		event := pub.last()
		require.NotNil(t, event)
		assert.Equal(t, kafka.EventUpdate, event.Type)
		require.Len(t, event.Data, 1)
		require.Len(t, event.Old, 1)
		assert.Equal(t, "caroline", event.Data[0].(*dto.UserDTO).Name)
		old := event.Old[0].(*dto.UserDTO)
		assert.Equal(t, created.ID, old.ID)
		assert.Equal(t, "carol", old.Name)
	})

	t.Run("list returns empty slice not nil", func(t *testing.T) {
		users, err := svc.ListUsers(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	assert.Equal(t, []string{"users:INSERT", "users:UPDATE"}, pub.types())
}

func TestPostService(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := NewPostService(repository.NewPostRepository(newTestDB(t), repository.SearchOptions{}), pub)

	var orphanUser uint64 = 77
	created, err := svc.CreatePost(ctx, &dto.PostCreateDTO{
		Title:    strPtr("first"),
		PostText: strPtr("hello"),
		UserID:   &orphanUser,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Likes)
	assert.Equal(t, orphanUser, created.UserID)

	t.Run("likes never go negative", func(t *testing.T) {
		got, err := svc.DecrementLikes(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Likes)
	})

	t.Run("n increments m decrements", func(t *testing.T) {
		const n, m = 4, 3
		for i := 0; i < n; i++ {
			_, err := svc.IncrementLikes(ctx, created.ID)
			require.NoError(t, err)
		}
		for i := 0; i < m; i++ {
			_, err := svc.DecrementLikes(ctx, created.ID)
			require.NoError(t, err)
		}
		got, err := svc.GetPost(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, n-m, got.Likes)
	})

	t.Run("patch text keeps other fields", func(t *testing.T) {
		got, err := svc.PatchPostText(ctx, created.ID, "bye")
		require.NoError(t, err)
		assert.Equal(t, "bye", got.PostText)
		assert.Equal(t, "first", got.Title)
		assert.Equal(t, orphanUser, got.UserID)
		assert.Equal(t, 1, got.Likes)

		event := pub.last()
		require.NotNil(t, event)
		require.Len(t, event.Old, 1)
		assert.Equal(t, "hello", event.Old[0].(*dto.PostDTO).PostText)
		assert.Equal(t, "bye", event.Data[0].(*dto.PostDTO).PostText)
	})

	t.Run("like events carry previous count", func(t *testing.T) {
		_, err := svc.IncrementLikes(ctx, created.ID)
		require.NoError(t, err)
		event := pub.last()
		require.NotNil(t, event)
		require.Len(t, event.Old, 1)
		assert.Equal(t, 1, event.Old[0].(*dto.PostDTO).Likes)
		assert.Equal(t, 2, event.Data[0].(*dto.PostDTO).Likes)

		_, err = svc.DecrementLikes(ctx, created.ID)
		require.NoError(t, err)
		event = pub.last()
		assert.Equal(t, 2, event.Old[0].(*dto.PostDTO).Likes)
		assert.Equal(t, 1, event.Data[0].(*dto.PostDTO).Likes)
	})

	t.Run("delete then get is NotFound", func(t *testing.T) {
		deleted, err := svc.DeletePost(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)
		assert.Equal(t, "bye", deleted.PostText)

		_, err = svc.GetPost(ctx, created.ID)
		assert.ErrorIs(t, err, ErrPostNotFound)

		_, err = svc.DeletePost(ctx, created.ID)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	types := pub.types()
	require.NotEmpty(t, types)
	assert.Equal(t, "posts:INSERT", types[0])
	assert.Equal(t, "posts:DELETE", types[len(types)-1])
	deleted := pub.last()
	assert.Empty(t, deleted.Old)
	assert.Equal(t, "bye", deleted.Data[0].(*dto.PostDTO).PostText)
}

func TestPostServiceForeignKeys(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, true)
	users := NewUserService(repository.NewUserRepo(db, repository.SearchOptions{}), kafka.NopPublisher{})
	pub := &recordingPublisher{}
	posts := NewPostService(repository.NewPostRepository(db, repository.SearchOptions{}), pub)

	owner, err := users.CreateUser(ctx, &dto.UserCreateDTO{Name: strPtr("erin")})
	require.NoError(t, err)

	missing := owner.ID + 100
	_, err = posts.CreatePost(ctx, &dto.PostCreateDTO{Title: strPtr("t"), PostText: strPtr("x"), UserID: &missing})
	assert.ErrorIs(t, err, ErrUserNotFound)

	created, err := posts.CreatePost(ctx, &dto.PostCreateDTO{Title: strPtr("t"), PostText: strPtr("x"), UserID: &owner.ID})
	require.NoError(t, err)

	_, err = posts.UpdatePost(ctx, created.ID, &dto.PostCreateDTO{Title: strPtr("t2"), PostText: strPtr("y"), UserID: &missing})
	assert.ErrorIs(t, err, ErrUserNotFound)

	got, err := posts.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, owner.ID, got.UserID)
	assert.Equal(t, []string{"posts:INSERT"}, pub.types())
}

func TestIsForeignKeyError(t *testing.T) {
	assert.False(t, isForeignKeyError(nil))
	assert.False(t, isForeignKeyError(errors.New("boom")))
	assert.True(t, isForeignKeyError(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyError(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})))
	assert.False(t, isForeignKeyError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.True(t, isForeignKeyError(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewUserService(repository.NewUserRepo(newTestDB(t), repository.SearchOptions{}), pub)

	created, err := svc.CreateUser(ctx, &dto.UserCreateDTO{Name: strPtr("dave")})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, pub.types(), 1)
}
