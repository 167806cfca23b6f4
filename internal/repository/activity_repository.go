package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tomlord1122/activity-todo-backend/internal/domain"
)

// ActivityChanges is the column set written by ActivityRepository.Update.
// A nil Email leaves the stored email untouched.
type ActivityChanges struct {
	Title     string
	Email     *string
	UpdatedAt time.Time
}

// ActivityRepository defines the data operations on activities.
// Lookups of a missing id return domain.ErrNotFound.
type ActivityRepository interface {
	FindAll(ctx context.Context) ([]domain.Activity, error)
	FindByID(ctx context.Context, id uint) (*domain.Activity, error)
	Create(ctx context.Context, activity *domain.Activity) error
	Update(ctx context.Context, id uint, changes ActivityChanges) (*domain.Activity, error)
	Delete(ctx context.Context, id uint) error
}

type gormActivityRepository struct {
	db *gorm.DB
}

func NewGormActivityRepository(db *gorm.DB) ActivityRepository {
	return &gormActivityRepository{db: db}
}

func (r *gormActivityRepository) FindAll(ctx context.Context) ([]domain.Activity, error) {
	activities := []domain.Activity{}
	if err := r.db.WithContext(ctx).Find(&activities).Error; err != nil {
		return nil, translate(err, "list activities")
	}
	return activities, nil
}

func (r *gormActivityRepository) FindByID(ctx context.Context, id uint) (*domain.Activity, error) {
	var activity domain.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, translate(err, "find activity")
	}
	return &activity, nil
}

func (r *gormActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return translate(err, "create activity")
	}
	return nil
}

// Update locks the row, writes the changes and reads the row back, all in
// one transaction.
func (r *gormActivityRepository) Update(ctx context.Context, id uint, changes ActivityChanges) (*domain.Activity, error) {
	var updated domain.Activity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.Activity
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, id).Error; err != nil {
			return err
		}

		columns := map[string]any{
			"title":      changes.Title,
			"updated_at": changes.UpdatedAt,
		}
		if changes.Email != nil {
			columns["email"] = *changes.Email
		}
		if err := tx.Model(&domain.Activity{}).Where("id = ?", id).Updates(columns).Error; err != nil {
			return err
		}

		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err, "update activity")
	}
	return &updated, nil
}

func (r *gormActivityRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Activity{}, id)
	if result.Error != nil {
		return translate(result.Error, "delete activity")
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
