package services

import (
	"context"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	model "task-manager-api.com/task-manager-api/internal/models"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
	userRepo    *repository.UserRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository, userRepo *repository.UserRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, userRepo: userRepo}
}

func (s *ProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*model.Project, error) {
	if req.OwnerID != nil {
		ok, err := s.userRepo.Exists(ctx, *req.OwnerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NotFound("User")
		}
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		OwnerID:     req.OwnerID,
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.projectRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, skip, limit int) ([]model.Project, error) {
	return s.projectRepo.List(ctx, skip, limit)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description.Set {
		if req.Description.Valid {
			v := req.Description.Value
			project.Description = &v
		} else {
			project.Description = nil
		}
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err, "Project")
	}
	return project, nil
}
