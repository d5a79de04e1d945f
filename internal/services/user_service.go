package services

import (
	"context"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	model "task-manager-api.com/task-manager-api/internal/models"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User")
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	return s.userRepo.List(ctx, skip, limit)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName.Set {
		if req.FullName.Valid {
			v := req.FullName.Value
			user.FullName = &v
		} else {
			user.FullName = nil
		}
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err, "User")
	}
	return user, nil
}
