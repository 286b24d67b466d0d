package service

import (
	"context"

	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
)

// DefaultCategories are inserted by SeedDefaults into an empty categories table.
var DefaultCategories = []model.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

type CategoryService interface {
	GetCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load categories")
		return nil, storageError(err, "list categories")
	}
	return &dto.CategoryListResponse{
		Envelope:   dto.OK("Categories returned successfully."),
		Categories: toCategoryMap(categories),
	}, nil
}

// SeedDefaults returns the number of inserted categories; 0 when the table already has rows.
func (s *categoryService) SeedDefaults(ctx context.Context) (int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, storageError(err, "count categories")
	}
	if total > 0 {
		return 0, nil
	}

	categories := make([]model.Category, len(DefaultCategories))
	copy(categories, DefaultCategories)
	if err := s.repo.CreateBatch(ctx, categories); err != nil {
		return 0, storageError(err, "seed categories")
	}
	log.Info().Int("count", len(categories)).Msg("Seeded default categories")
	return len(categories), nil
}
