package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Tomlord1122/activity-todo-backend/internal/domain"
)

// MemoryStore keeps activities and todos in process memory for local
// development and tests. Ids are assigned sequentially per table, starting
// at 1. Data is lost on restart.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[uint]domain.Activity
	todos      map[uint]domain.Todo
	nextActID  uint
	nextTodoID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		activities: make(map[uint]domain.Activity),
		todos:      make(map[uint]domain.Todo),
		nextActID:  1,
		nextTodoID: 1,
	}
}

// Activities returns an ActivityRepository backed by the store.
func (m *MemoryStore) Activities() ActivityRepository {
	return memoryActivities{m}
}

// Todos returns a TodoRepository backed by the store.
func (m *MemoryStore) Todos() TodoRepository {
	return memoryTodos{m}
}

type memoryActivities struct {
	m *MemoryStore
}

func (r memoryActivities) FindAll(ctx context.Context) ([]domain.Activity, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := make([]domain.Activity, 0, len(r.m.activities))
	for _, a := range r.m.activities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryActivities) FindByID(ctx context.Context, id uint) (*domain.Activity, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	a, ok := r.m.activities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r memoryActivities) Create(ctx context.Context, activity *domain.Activity) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	activity.ID = r.m.nextActID
	r.m.nextActID++

	stored := *activity
	stored.Email = cloneString(activity.Email)
	stored.UpdatedAt = cloneTime(activity.UpdatedAt)
	r.m.activities[activity.ID] = stored
	return nil
}

func (r memoryActivities) Update(ctx context.Context, id uint, changes ActivityChanges) (*domain.Activity, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	a, ok := r.m.activities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Title = changes.Title
	if changes.Email != nil {
		a.Email = cloneString(changes.Email)
	}
	updatedAt := changes.UpdatedAt
	a.UpdatedAt = &updatedAt
	r.m.activities[id] = a
	return &a, nil
}

func (r memoryActivities) Delete(ctx context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.activities[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.activities, id)
	return nil
}

type memoryTodos struct {
	m *MemoryStore
}

func (r memoryTodos) FindAll(ctx context.Context, activityGroupID *uint) ([]domain.Todo, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := make([]domain.Todo, 0, len(r.m.todos))
	for _, t := range r.m.todos {
		if activityGroupID != nil && t.ActivityGroupID != *activityGroupID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryTodos) FindByID(ctx context.Context, id uint) (*domain.Todo, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	t, ok := r.m.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r memoryTodos) Create(ctx context.Context, todo *domain.Todo) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	todo.ID = r.m.nextTodoID
	r.m.nextTodoID++

	stored := *todo
	stored.UpdatedAt = cloneTime(todo.UpdatedAt)
	r.m.todos[todo.ID] = stored
	return nil
}

func (r memoryTodos) Update(ctx context.Context, id uint, changes TodoChanges) (*domain.Todo, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	t, ok := r.m.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if changes.Title != nil {
		t.Title = *changes.Title
	}
	if changes.ActivityGroupID != nil {
		t.ActivityGroupID = *changes.ActivityGroupID
	}
	if changes.IsActive != nil {
		t.IsActive = *changes.IsActive
	}
	if changes.Priority != nil {
		t.Priority = *changes.Priority
	}
	updatedAt := changes.UpdatedAt
	t.UpdatedAt = &updatedAt
	r.m.todos[id] = t
	return &t, nil
}

func (r memoryTodos) Delete(ctx context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.todos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.todos, id)
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
