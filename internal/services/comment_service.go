package services

import (
	"context"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	model "task-manager-api.com/task-manager-api/internal/models"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	taskRepo    *repository.TaskRepository
	userRepo    *repository.UserRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	taskRepo *repository.TaskRepository,
	userRepo *repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*model.Comment, error) {
	if _, err := s.taskRepo.FindByID(ctx, req.TaskID); err != nil {
		return nil, notFoundOr(err, "Task")
	}

	ok, err := s.userRepo.Exists(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("User")
	}

	comment := &model.Comment{
		Content:  req.Content,
		TaskID:   &req.TaskID,
		AuthorID: &req.AuthorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Comment")
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, skip, limit int) ([]model.Comment, error) {
	return s.commentRepo.List(ctx, skip, limit)
}

func (s *CommentService) UpdateComment(ctx context.Context, id uint, req *dto.UpdateCommentRequest) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Comment")
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Comment")
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err, "Comment")
	}
	return comment, nil
}
