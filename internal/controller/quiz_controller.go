package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// PlayQuiz godoc
// @Summary Next quiz question
// @Description Picks a random question from the chosen category (id 0 for all) that is not in previous_questions. The question field is absent when none remain.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 422 {object} dto.ErrorResponse "Malformed body or storage error"
// @Router /quizzes [post]
func (ctrl *QuizController) PlayQuiz(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("PlayQuiz: failed to bind JSON")
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	resp, err := ctrl.quizService.NextQuestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "PlayQuiz")
		return
	}
	c.JSON(http.StatusOK, resp)
}
