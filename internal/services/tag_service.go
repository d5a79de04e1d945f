package services

import (
	"context"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	model "task-manager-api.com/task-manager-api/internal/models"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
)

const defaultTagColor = "#3498db"

type TagService struct {
	tagRepo *repository.TagRepository
}

func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*model.Tag, error) {
	tag := &model.Tag{
		Name:  req.Name,
		Color: defaultTagColor,
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) GetTag(ctx context.Context, id uint) (*model.Tag, error) {
	tag, err := s.tagRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Tag")
	}
	return tag, nil
}

func (s *TagService) ListTags(ctx context.Context, skip, limit int) ([]model.Tag, error) {
	return s.tagRepo.List(ctx, skip, limit)
}

func (s *TagService) UpdateTag(ctx context.Context, id uint, req *dto.UpdateTagRequest) (*model.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Tag")
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) DeleteTag(ctx context.Context, id uint) (*model.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Tag")
	}

	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err, "Tag")
	}
	return tag, nil
}
