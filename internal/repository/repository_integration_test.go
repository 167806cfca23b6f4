//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/Tomlord1122/activity-todo-backend/internal/config"
	"github.com/Tomlord1122/activity-todo-backend/internal/database"
	"github.com/Tomlord1122/activity-todo-backend/internal/domain"
	"github.com/Tomlord1122/activity-todo-backend/internal/repository"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("todo"),
		postgres.WithUsername("todo"),
		postgres.WithPassword("todo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := database.New(config.Database{
		Driver:          config.DriverPostgres,
		Host:            host,
		Port:            port.Port(),
		Database:        "todo",
		Username:        "todo",
		Password:        "todo",
		ConnectTimeout:  5 * time.Second,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	assert.Equal(t, "up", db.Health(ctx)["status"])

	return db.GetDB()
}

func TestGormActivityRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGormActivityRepository(startPostgres(t))

	email := "ops@example.com"
	createdAt := time.Now().UTC().Truncate(time.Millisecond)
	activity := &domain.Activity{Title: "Ops", Email: &email, CreatedAt: createdAt, UpdatedAt: &createdAt}
	require.NoError(t, repo.Create(ctx, activity))
	require.NotZero(t, activity.ID)

	stored, err := repo.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ops", stored.Title)
	assert.True(t, createdAt.Equal(stored.CreatedAt))
	require.NotNil(t, stored.UpdatedAt)
	assert.True(t, createdAt.Equal(*stored.UpdatedAt))

	updatedAt := time.Now().UTC().Truncate(time.Millisecond)
	updated, err := repo.Update(ctx, activity.ID, repository.ActivityChanges{Title: "Ops v2", UpdatedAt: updatedAt})
	require.NoError(t, err)
	assert.Equal(t, "Ops v2", updated.Title)
	require.NotNil(t, updated.Email)
	assert.Equal(t, email, *updated.Email)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updatedAt.Equal(*updated.UpdatedAt))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, activity.ID))
	assert.ErrorIs(t, repo.Delete(ctx, activity.ID), domain.ErrNotFound)

	_, err = repo.FindByID(ctx, activity.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Update(ctx, activity.ID, repository.ActivityChanges{Title: "x", UpdatedAt: updatedAt})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGormTodoRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewGormTodoRepository(startPostgres(t))

	now := time.Now().UTC().Truncate(time.Millisecond)
	for _, group := range []uint{1, 2, 1} {
		todo := &domain.Todo{
			Title:           "task",
			ActivityGroupID: group,
			IsActive:        domain.DefaultIsActive,
			Priority:        domain.DefaultPriority,
			CreatedAt:       now,
			UpdatedAt:       &now,
		}
		require.NoError(t, repo.Create(ctx, todo))
	}

	all, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	group := uint(1)
	filtered, err := repo.FindAll(ctx, &group)
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	id := all[0].ID
	inactive := false
	updated, err := repo.Update(ctx, id, repository.TodoChanges{IsActive: &inactive, UpdatedAt: now})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "task", updated.Title)
	assert.Equal(t, domain.DefaultPriority, updated.Priority)
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrNotFound)

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bare := &domain.Todo{Title: "no timestamp", ActivityGroupID: 3, Priority: "low", CreatedAt: now}
	require.NoError(t, repo.Create(ctx, bare))
	stored, err := repo.FindByID(ctx, bare.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.UpdatedAt)
}
