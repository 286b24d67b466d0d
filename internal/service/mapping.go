package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
)

// QuestionsPerPage is the fixed page size of question listings.
const QuestionsPerPage = 10

func toQuestionResponse(q *model.Question) (dto.QuestionResponse, error) {
	var resp dto.QuestionResponse
	err := copier.Copy(&resp, q)
	return resp, err
}

// toQuestionResponses never returns a nil slice so empty results encode as [].
func toQuestionResponses(questions []model.Question) ([]dto.QuestionResponse, error) {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp, err := toQuestionResponse(&questions[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func toCategoryMap(categories []model.Category) map[uint]string {
	out := make(map[uint]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
