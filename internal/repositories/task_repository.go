package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-manager-api.com/task-manager-api/internal/constants"
	model "task-manager-api.com/task-manager-api/internal/models"
)

// TaskFilter holds the conjunctive listing filters; nil fields impose no
// constraint.
type TaskFilter struct {
	Status     *constants.TaskStatus
	Priority   *constants.TaskPriority
	ProjectID  *uint
	AssigneeID *uint
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create persists the task together with any pre-resolved tags on it; GORM
// wraps the row insert and the task_tags rows in one transaction.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Preload("ParentTask").
		Preload("Subtasks").
		Preload("Tags").
		Preload("Comments").
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns tasks in id order so repeated calls with the same filter page
// through a stable sequence.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter, offset, limit int) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Order("id asc").Offset(offset).Limit(limit)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListByParent(ctx context.Context, parentID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("parent_task_id = ?", parentID).
		Order("id asc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update writes the full patched row and, when tags is non-nil, replaces the
// task's tag set in the same transaction so both apply or neither does. An
// empty non-nil slice clears all tags.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, tags *[]model.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		if tags == nil {
			return nil
		}

		newTags := *tags
		if len(newTags) == 0 {
			if err := tx.Model(task).Association("Tags").Clear(); err != nil {
				return fmt.Errorf("clear task tags: %w", err)
			}
			return nil
		}
		if err := tx.Model(task).Association("Tags").Replace(&newTags); err != nil {
			return fmt.Errorf("replace task tags: %w", err)
		}
		return nil
	})
}

// Delete removes only the task row; subtasks, comments and task_tags rows are
// left in place.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error
	return count, err
}

func (r *TaskRepository) CountCompleted(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("is_completed = ?", true).
		Count(&count).Error
	return count, err
}

func (r *TaskRepository) CountByStatus(ctx context.Context, status constants.TaskStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
