package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	NextQuestion(ctx context.Context, req dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	repo repository.QuestionRepository
	intn func(n int) int
}

func NewQuizService(repo repository.QuestionRepository) QuizService {
	return &quizService{repo: repo, intn: rand.Intn}
}

// NextQuestion draws one question uniformly at random from the rows that match the
// quiz category (id 0 or no category means all) and are not in previous_questions.
// The response carries no question once the pool is exhausted.
func (s *quizService) NextQuestion(ctx context.Context, req dto.QuizRequest) (*dto.QuizResponse, error) {
	filter := repository.QuizFilter{ExcludeIDs: make([]uint, 0, len(req.PreviousQuestions))}
	if req.QuizCategory != nil {
		filter.CategoryID = uint(req.QuizCategory.ID)
	}
	for _, id := range req.PreviousQuestions {
		filter.ExcludeIDs = append(filter.ExcludeIDs, uint(id))
	}

	resp := &dto.QuizResponse{Envelope: dto.OK("Quiz question returned successfully.")}

	eligible, err := s.repo.CountEligible(ctx, filter)
	if err != nil {
		return nil, storageError(err, "count quiz questions")
	}
	if eligible == 0 {
		resp.Message = "No more questions available."
		return resp, nil
	}

	question, err := s.repo.FindEligibleAt(ctx, filter, s.intn(int(eligible)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// rows were deleted between the count and the fetch; draw again from the new count
		log.Warn().Int64("eligible", eligible).Msg("Quiz pool shrank while selecting a question")
		eligible, err = s.repo.CountEligible(ctx, filter)
		if err != nil {
			return nil, storageError(err, "count quiz questions")
		}
		if eligible == 0 {
			resp.Message = "No more questions available."
			return resp, nil
		}
		question, err = s.repo.FindEligibleAt(ctx, filter, s.intn(int(eligible)))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Message = "No more questions available."
			return resp, nil
		}
	}
	if err != nil {
		return nil, storageError(err, "select quiz question")
	}

	q, err := toQuestionResponse(question)
	if err != nil {
		return nil, storageError(err, "map quiz question")
	}
	resp.Question = &q
	return resp, nil
}
