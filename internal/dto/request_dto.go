package dto

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// FlexibleID decodes an id sent either as a JSON number or a numeric string.
// The game client is inconsistent about this ("category": "6" vs 6). null decodes to 0.
type FlexibleID uint

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*id = 0
		return nil
	}
	switch n := raw.(type) {
	case bool:
		return fmt.Errorf("invalid id %s", string(data))
	case float64:
		if n != math.Trunc(n) {
			return fmt.Errorf("invalid id %s: not a whole number", string(data))
		}
	}
	v, err := cast.ToUintE(raw)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", string(data), err)
	}
	*id = FlexibleID(v)
	return nil
}

type CreateQuestionRequest struct {
	Question   string     `json:"question" example:"What is the largest lake in Africa?"`
	Answer     string     `json:"answer" example:"Lake Victoria"`
	Category   FlexibleID `json:"category" swaggertype:"integer" example:"3"`
	Difficulty int        `json:"difficulty" example:"2"`
}

type SearchQuestionsRequest struct {
	// SearchTerm is a pointer so a missing key can be told apart from "".
	SearchTerm *string `json:"searchTerm" example:"title"`
}

type QuizCategory struct {
	ID   FlexibleID `json:"id" swaggertype:"integer" example:"1"`
	Type string     `json:"type,omitempty" example:"Science"`
}

type QuizRequest struct {
	PreviousQuestions []FlexibleID  `json:"previous_questions" swaggertype:"array,integer"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}
