package service

import (
	"context"
	"time"

	"github.com/Tomlord1122/activity-todo-backend/internal/domain"
	"github.com/Tomlord1122/activity-todo-backend/internal/field"
	"github.com/Tomlord1122/activity-todo-backend/internal/repository"
)

// CreateActivityRequest holds the data needed to create a new activity.
type CreateActivityRequest struct {
	Title field.Title
	Email *string
}

// UpdateActivityRequest replaces the title and, when Email is non-nil, the email.
type UpdateActivityRequest struct {
	Title field.Title
	Email *string
}

// ActivityResponse is the representation of an Activity returned to clients.
type ActivityResponse struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Email     *string    `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// ActivityService defines the operations for managing activity groups.
type ActivityService interface {
	ListActivities(ctx context.Context) ([]ActivityResponse, error)
	CreateActivity(ctx context.Context, req CreateActivityRequest) (*ActivityResponse, error)
	GetActivity(ctx context.Context, id uint) (*ActivityResponse, error)
	// UpdateActivity always refreshes updatedAt.
	UpdateActivity(ctx context.Context, id uint, req UpdateActivityRequest) (*ActivityResponse, error)
	// DeleteActivity checks the activity exists before deleting it so a
	// missing id is reported as ErrNotFound rather than a silent no-op.
	// Todos of the deleted activity are kept.
	DeleteActivity(ctx context.Context, id uint) error
}

type activityService struct {
	repo repository.ActivityRepository
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{
		repo: repo,
		now:  clock,
	}
}

func (s *activityService) ListActivities(ctx context.Context) ([]ActivityResponse, error) {
	activities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, wrap(err, "failed to retrieve activities")
	}

	responses := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		responses = append(responses, toActivityResponse(&activities[i]))
	}
	return responses, nil
}

func (s *activityService) CreateActivity(ctx context.Context, req CreateActivityRequest) (*ActivityResponse, error) {
	if req.Title.IsZero() {
		return nil, ErrInvalidTitle
	}

	now := s.now()
	activity := &domain.Activity{
		Title:     req.Title.String(),
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: &now,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, wrap(err, "failed to create activity")
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

func (s *activityService) GetActivity(ctx context.Context, id uint) (*ActivityResponse, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "activity with ID %d", id)
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

func (s *activityService) UpdateActivity(ctx context.Context, id uint, req UpdateActivityRequest) (*ActivityResponse, error) {
	if req.Title.IsZero() {
		return nil, ErrInvalidTitle
	}

	activity, err := s.repo.Update(ctx, id, repository.ActivityChanges{
		Title:     req.Title.String(),
		Email:     req.Email,
		UpdatedAt: s.now(),
	})
	if err != nil {
		return nil, wrap(err, "failed to update activity with ID %d", id)
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return wrap(err, "activity with ID %d", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap(err, "failed to delete activity with ID %d", id)
	}
	return nil
}

func toActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		Title:     a.Title,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
