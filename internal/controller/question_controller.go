package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// GetQuestions godoc
// @Summary List questions, paginated
// @Description Ten questions per page ordered by id, with the total count and every category.
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse "Page past the last page"
// @Failure 422 {object} dto.ErrorResponse "Invalid page or storage error"
// @Router /questions [get]
func (ctrl *QuestionController) GetQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		log.Warn().Str("page", c.Query("page")).Msg("GetQuestions: invalid page")
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	resp, err := ctrl.questionService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "GetQuestions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Question and answer text are required; category must exist.
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "New question"
// @Success 200 {object} dto.QuestionCreatedResponse
// @Failure 422 {object} dto.ErrorResponse "Missing fields, unknown category or storage error"
// @Router /questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind JSON")
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	resp, err := ctrl.questionService.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "CreateQuestion")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Returns the deleted id together with the refreshed first page.
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDeletedResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Storage error"
// @Router /questions/{id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionService.DeleteQuestion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "DeleteQuestion")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring match on the question text.
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchQuestionsRequest true "Search term"
// @Success 200 {object} dto.QuestionSearchResponse
// @Failure 422 {object} dto.ErrorResponse "Missing searchTerm or storage error"
// @Router /questions/search [post]
func (ctrl *QuestionController) SearchQuestions(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SearchTerm == nil {
		log.Warn().Err(err).Msg("SearchQuestions: missing or malformed searchTerm")
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	resp, err := ctrl.questionService.SearchQuestions(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		respondError(c, err, "SearchQuestions")
		return
	}
	c.JSON(http.StatusOK, resp)
}
