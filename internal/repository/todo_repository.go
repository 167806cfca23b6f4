package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tomlord1122/activity-todo-backend/internal/domain"
)

// TodoChanges is a partial update of a todo. Nil fields keep their stored
// value; UpdatedAt is always written.
type TodoChanges struct {
	Title           *string
	ActivityGroupID *uint
	IsActive        *bool
	Priority        *string
	UpdatedAt       time.Time
}

// TodoRepository defines the interface for todo data operations.
// Lookups of a missing id return domain.ErrNotFound.
type TodoRepository interface {
	// FindAll returns every todo, or only those of one activity group when
	// activityGroupID is set.
	FindAll(ctx context.Context, activityGroupID *uint) ([]domain.Todo, error)
	FindByID(ctx context.Context, id uint) (*domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) error
	Update(ctx context.Context, id uint, changes TodoChanges) (*domain.Todo, error)
	Delete(ctx context.Context, id uint) error
}

type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM todo repository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) FindAll(ctx context.Context, activityGroupID *uint) ([]domain.Todo, error) {
	query := r.db.WithContext(ctx)
	if activityGroupID != nil {
		query = query.Where("activity_group_id = ?", *activityGroupID)
	}

	todos := []domain.Todo{}
	if err := query.Find(&todos).Error; err != nil {
		return nil, translate(err, "list todos")
	}
	return todos, nil
}

func (r *gormTodoRepository) FindByID(ctx context.Context, id uint) (*domain.Todo, error) {
	var todo domain.Todo
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, translate(err, "find todo")
	}
	return &todo, nil
}

func (r *gormTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return translate(err, "create todo")
	}
	return nil
}

// Update applies every supplied field in a single UPDATE inside a
// transaction that holds the row lock, so concurrent partial updates of the
// same todo cannot interleave.
func (r *gormTodoRepository) Update(ctx context.Context, id uint, changes TodoChanges) (*domain.Todo, error) {
	var updated domain.Todo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.Todo
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, id).Error; err != nil {
			return err
		}

		columns := map[string]any{"updated_at": changes.UpdatedAt}
		if changes.Title != nil {
			columns["title"] = *changes.Title
		}
		if changes.ActivityGroupID != nil {
			columns["activity_group_id"] = *changes.ActivityGroupID
		}
		if changes.IsActive != nil {
			columns["is_active"] = *changes.IsActive
		}
		if changes.Priority != nil {
			columns["priority"] = *changes.Priority
		}
		if err := tx.Model(&domain.Todo{}).Where("id = ?", id).Updates(columns).Error; err != nil {
			return err
		}

		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err, "update todo")
	}
	return &updated, nil
}

func (r *gormTodoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Todo{}, id)
	if result.Error != nil {
		return translate(result.Error, "delete todo")
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
