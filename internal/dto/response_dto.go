package dto

// Envelope is embedded in every successful response.
type Envelope struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Questions returned successfully."`
}

func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

type QuestionResponse struct {
	ID         uint   `json:"id" example:"5"`
	Question   string `json:"question" example:"What is H2O?"`
	Answer     string `json:"answer" example:"Water"`
	Category   uint   `json:"category" example:"1"`
	Difficulty int    `json:"difficulty" example:"1"`
}

type CategoryListResponse struct {
	Envelope
	Categories map[uint]string `json:"categories"`
}

type QuestionListResponse struct {
	Envelope
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions" example:"19"`
	Categories      map[uint]string    `json:"categories"`
	CurrentCategory *uint              `json:"current_category"`
}

type QuestionCreatedResponse struct {
	Envelope
	Created    uint   `json:"created" example:"24"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type QuestionDeletedResponse struct {
	Envelope
	Deleted        uint               `json:"deleted" example:"4"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

type QuestionSearchResponse struct {
	Envelope
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory *uint              `json:"current_category"`
}

type CategoryQuestionsResponse struct {
	Envelope
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory uint               `json:"current_category" example:"1"`
}

type QuizResponse struct {
	Envelope
	// Question is omitted once every eligible question has been served.
	Question *QuestionResponse `json:"question,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"422"`
	Message string `json:"message" example:"unprocessable"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
