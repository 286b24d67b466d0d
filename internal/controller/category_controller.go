package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/service"
)

type CategoryController struct {
	categoryService service.CategoryService
	questionService service.QuestionService
}

func NewCategoryController(categoryService service.CategoryService, questionService service.QuestionService) *CategoryController {
	return &CategoryController{categoryService: categoryService, questionService: questionService}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as a map from id to type label.
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 422 {object} dto.ErrorResponse "Storage error"
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	resp, err := ctrl.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "GetCategories")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCategoryQuestions godoc
// @Summary List questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 422 {object} dto.ErrorResponse "Storage error"
// @Router /categories/{id}/questions [get]
func (ctrl *CategoryController) GetCategoryQuestions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionService.GetQuestionsByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "GetCategoryQuestions")
		return
	}
	c.JSON(http.StatusOK, resp)
}
