package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionCreatedResponse, error)
	DeleteQuestion(ctx context.Context, id uint) (*dto.QuestionDeletedResponse, error)
	SearchQuestions(ctx context.Context, term string) (*dto.QuestionSearchResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID uint) (*dto.CategoryQuestionsResponse, error)
}

type questionService struct {
	repo         repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

func NewQuestionService(repo repository.QuestionRepository, categoryRepo repository.CategoryRepository) QuestionService {
	return &questionService{repo: repo, categoryRepo: categoryRepo}
}

// ListQuestions returns one page of QuestionsPerPage questions ordered by id.
// A page past the last one is ErrNotFound; page 1 of an empty table is not.
func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	if page < 1 {
		return nil, fmt.Errorf("page %d: %w", page, ErrUnprocessable)
	}

	questions, total, err := s.page(ctx, page)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, storageError(err, "list categories")
	}

	return &dto.QuestionListResponse{
		Envelope:       dto.OK("Questions returned successfully."),
		Questions:      questions,
		TotalQuestions: total,
		Categories:     toCategoryMap(categories),
	}, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionCreatedResponse, error) {
	text := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if text == "" || answer == "" {
		return nil, fmt.Errorf("question and answer are required: %w", ErrUnprocessable)
	}
	if req.Difficulty < 0 {
		return nil, fmt.Errorf("difficulty %d must not be negative: %w", req.Difficulty, ErrUnprocessable)
	}

	categoryID := uint(req.Category)
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Uint("category", categoryID).Msg("Question references an unknown category")
			return nil, fmt.Errorf("category %d does not exist: %w", categoryID, ErrUnprocessable)
		}
		return nil, storageError(err, "look up category")
	}

	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}
	question := model.Question{
		Question:   text,
		Answer:     answer,
		Category:   categoryID,
		Difficulty: difficulty,
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("create question: %w: %v", ErrUnprocessable, err)
	}

	return &dto.QuestionCreatedResponse{
		Envelope:   dto.OK("Question created successfully."),
		Created:    question.ID,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}, nil
}

// DeleteQuestion removes one question and returns the refreshed first page.
func (s *questionService) DeleteQuestion(ctx context.Context, id uint) (*dto.QuestionDeletedResponse, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storageError(err, fmt.Sprintf("delete question %d", id))
	}

	questions, total, err := s.page(ctx, 1)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionDeletedResponse{
		Envelope:       dto.OK("Question deleted successfully."),
		Deleted:        id,
		Questions:      questions,
		TotalQuestions: total,
	}, nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string) (*dto.QuestionSearchResponse, error) {
	found, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, storageError(err, "search questions")
	}
	questions, err := toQuestionResponses(found)
	if err != nil {
		return nil, fmt.Errorf("map questions: %w: %v", ErrUnprocessable, err)
	}
	return &dto.QuestionSearchResponse{
		Envelope:       dto.OK("Search results returned successfully."),
		Questions:      questions,
		TotalQuestions: int64(len(questions)),
	}, nil
}

func (s *questionService) GetQuestionsByCategory(ctx context.Context, categoryID uint) (*dto.CategoryQuestionsResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, storageError(err, fmt.Sprintf("category %d", categoryID))
	}

	found, err := s.repo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, storageError(err, "list category questions")
	}
	questions, err := toQuestionResponses(found)
	if err != nil {
		return nil, fmt.Errorf("map questions: %w: %v", ErrUnprocessable, err)
	}
	return &dto.CategoryQuestionsResponse{
		Envelope:        dto.OK("Category questions returned successfully."),
		Questions:       questions,
		TotalQuestions:  int64(len(questions)),
		CurrentCategory: categoryID,
	}, nil
}

func (s *questionService) page(ctx context.Context, page int) ([]dto.QuestionResponse, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, storageError(err, "count questions")
	}
	// checked before the offset is computed; (page-1)*QuestionsPerPage overflows for huge pages
	lastPage := (total + QuestionsPerPage - 1) / QuestionsPerPage
	if page > 1 && int64(page-1) >= lastPage {
		return nil, total, fmt.Errorf("page %d of %d questions: %w", page, total, ErrNotFound)
	}
	found, err := s.repo.FindPage(ctx, (page-1)*QuestionsPerPage, QuestionsPerPage)
	if err != nil {
		return nil, 0, storageError(err, "list questions")
	}
	questions, err := toQuestionResponses(found)
	if err != nil {
		return nil, 0, fmt.Errorf("map questions: %w: %v", ErrUnprocessable, err)
	}
	return questions, total, nil
}
