package services

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"task-manager-api.com/task-manager-api/internal/cache"
	"task-manager-api.com/task-manager-api/internal/constants"
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	model "task-manager-api.com/task-manager-api/internal/models"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
)

type TaskService struct {
	taskRepo    *repository.TaskRepository
	projectRepo *repository.ProjectRepository
	userRepo    *repository.UserRepository
	tagRepo     *repository.TagRepository
	commentRepo *repository.CommentRepository
	statsCache  *cache.StatsCache
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	projectRepo *repository.ProjectRepository,
	userRepo *repository.UserRepository,
	tagRepo *repository.TagRepository,
	commentRepo *repository.CommentRepository,
	statsCache *cache.StatsCache,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		tagRepo:     tagRepo,
		commentRepo: commentRepo,
		statsCache:  statsCache,
	}
}

// notFoundOr maps a missing row to a client-facing not-found error naming the
// entity type; anything else is passed through untouched.
func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(entity)
	}
	return err
}

func (s *TaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	if req.ProjectID != nil {
		ok, err := s.projectRepo.Exists(ctx, *req.ProjectID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NotFound("Project")
		}
	}

	if req.AssigneeID != nil {
		ok, err := s.userRepo.Exists(ctx, *req.AssigneeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NotFound("User")
		}
	}

	if req.ParentTaskID != nil {
		if _, err := s.taskRepo.FindByID(ctx, *req.ParentTaskID); err != nil {
			return nil, notFoundOr(err, "Parent task")
		}
	}

	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         constants.StatusPending,
		Priority:       constants.PriorityMedium,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		ProjectID:      req.ProjectID,
		AssigneeID:     req.AssigneeID,
		ParentTaskID:   req.ParentTaskID,
		Tags:           tags,
	}
	if req.Status != nil {
		task.Status = constants.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = constants.TaskPriority(*req.Priority)
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Task")
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter, skip, limit int) ([]model.Task, error) {
	return s.taskRepo.List(ctx, filter, skip, limit)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Task")
	}

	if req.AssigneeID.Set && req.AssigneeID.Valid {
		ok, err := s.userRepo.Exists(ctx, req.AssigneeID.Value)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NotFound("User")
		}
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description.Set {
		if req.Description.Valid {
			v := req.Description.Value
			task.Description = &v
		} else {
			task.Description = nil
		}
	}
	if req.Status != nil {
		task.Status = constants.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = constants.TaskPriority(*req.Priority)
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	if req.DueDate.Set {
		if req.DueDate.Valid {
			v := req.DueDate.Value
			task.DueDate = &v
		} else {
			task.DueDate = nil
		}
	}
	if req.EstimatedHours.Set {
		if req.EstimatedHours.Valid {
			v := req.EstimatedHours.Value
			task.EstimatedHours = &v
		} else {
			task.EstimatedHours = nil
		}
	}
	if req.ActualHours.Set {
		if req.ActualHours.Valid {
			v := req.ActualHours.Value
			task.ActualHours = &v
		} else {
			task.ActualHours = nil
		}
	}
	if req.AssigneeID.Set {
		if req.AssigneeID.Valid {
			v := req.AssigneeID.Value
			task.AssigneeID = &v
		} else {
			task.AssigneeID = nil
		}
	}

	// A present tag_ids list, empty included, replaces the task's tag set;
	// an absent one leaves the current set alone.
	var tags *[]model.Tag
	if req.TagIDs.Set && req.TagIDs.Valid {
		resolved, err := s.resolveTags(ctx, req.TagIDs.Value)
		if err != nil {
			return nil, err
		}
		tags = &resolved
	}

	if err := s.taskRepo.Update(ctx, task, tags); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Task")
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err, "Task")
	}
	return task, nil
}

func (s *TaskService) ListSubtasks(ctx context.Context, id uint) ([]model.Task, error) {
	if _, err := s.taskRepo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "Task")
	}
	return s.taskRepo.ListByParent(ctx, id)
}

func (s *TaskService) ListComments(ctx context.Context, id uint) ([]model.Comment, error) {
	if _, err := s.taskRepo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "Task")
	}
	return s.commentRepo.ListByTask(ctx, id)
}

func (s *TaskService) Stats(ctx context.Context) (*dto.TaskStats, error) {
	if stats, ok := s.statsCache.Get(ctx); ok {
		return stats, nil
	}

	total, err := s.taskRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.taskRepo.CountCompleted(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.taskRepo.CountByStatus(ctx, constants.StatusPending)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.taskRepo.CountByStatus(ctx, constants.StatusInProgress)
	if err != nil {
		return nil, err
	}

	stats := &dto.TaskStats{
		TotalTasks:      total,
		CompletedTasks:  completed,
		PendingTasks:    pending,
		InProgressTasks: inProgress,
	}
	if total > 0 {
		stats.CompletionRate = math.Round(float64(completed)/float64(total)*100*100) / 100
	}

	s.statsCache.Set(ctx, stats)
	return stats, nil
}

// resolveTags de-duplicates the requested ids and resolves only those that
// exist; unknown ids are dropped rather than rejected.
func (s *TaskService) resolveTags(ctx context.Context, ids []uint) ([]model.Tag, error) {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return s.tagRepo.FindByIDs(ctx, unique)
}
