package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/internal/controller"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/lshigami/trivia/internal/router"
	"github.com/lshigami/trivia/internal/service"
	"github.com/lshigami/trivia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	engine *gin.Engine
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	testutil.SeedCategories(s.T(), s.db)

	questionRepo := repository.NewQuestionRepository(s.db)
	categoryRepo := repository.NewCategoryRepository(s.db)
	questionSvc := service.NewQuestionService(questionRepo, categoryRepo)

	cfg := &config.Config{Server: config.Server{GinMode: gin.TestMode, CorsOrigins: []string{"*"}}}
	s.engine = router.NewGinEngine(cfg)
	router.RegisterRoutes(
		s.engine,
		controller.NewCategoryController(service.NewCategoryService(categoryRepo), questionSvc),
		controller.NewQuestionController(questionSvc),
		controller.NewQuizController(service.NewQuizService(questionRepo)),
		controller.NewHealthController(s.db),
	)
}

func (s *APITestSuite) do(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" && bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func (s *APITestSuite) assertError(w *httptest.ResponseRecorder, body map[string]interface{}, status int) {
	assert.Equal(s.T(), status, w.Code)
	require.NotNil(s.T(), body)
	assert.Equal(s.T(), false, body["success"])
	assert.Equal(s.T(), float64(status), body["error"])
	assert.NotEmpty(s.T(), body["message"])
}

func (s *APITestSuite) TestGetCategories() {
	w, body := s.do(http.MethodGet, "/categories", nil)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), true, body["success"])
	categories := body["categories"].(map[string]interface{})
	assert.Len(s.T(), categories, 6)
	assert.Equal(s.T(), "Science", categories["1"])
	assert.Equal(s.T(), "Sports", categories["6"])
}

func (s *APITestSuite) TestGetQuestionsPaginated() {
	testutil.SeedQuestions(s.T(), s.db, 19)

	w, body := s.do(http.MethodGet, "/questions", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), true, body["success"])
	assert.Len(s.T(), body["questions"], 10)
	assert.Equal(s.T(), float64(19), body["total_questions"])
	assert.Len(s.T(), body["categories"], 6)
	assert.Contains(s.T(), body, "current_category")

	first := body["questions"].([]interface{})[0].(map[string]interface{})
	assert.ElementsMatch(s.T(), []string{"id", "question", "answer", "category", "difficulty"}, keys(first))

	w, body = s.do(http.MethodGet, "/questions?page=2", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Len(s.T(), body["questions"], 9)
}

func (s *APITestSuite) TestGetQuestionsBeyondLastPage() {
	testutil.SeedQuestions(s.T(), s.db, 19)

	w, body := s.do(http.MethodGet, "/questions?page=1000", nil)
	s.assertError(w, body, http.StatusNotFound)
	assert.Equal(s.T(), "page not found", body["message"])
}

func (s *APITestSuite) TestGetQuestionsHugePage() {
	testutil.SeedQuestions(s.T(), s.db, 19)

	for _, page := range []string{"3", "1000000000000000000", "9223372036854775807"} {
		w, body := s.do(http.MethodGet, "/questions?page="+page, nil)
		s.assertError(w, body, http.StatusNotFound)
	}
}

func (s *APITestSuite) TestCreateQuestionFractionalCategory() {
	w, body := s.do(http.MethodPost, "/questions",
		`{"question":"Q?","answer":"A","category":1.5,"difficulty":1}`)
	s.assertError(w, body, http.StatusUnprocessableEntity)
}

func (s *APITestSuite) TestGetQuestionsInvalidPage() {
	for _, page := range []string{"0", "-1", "abc"} {
		w, body := s.do(http.MethodGet, "/questions?page="+page, nil)
		s.assertError(w, body, http.StatusUnprocessableEntity)
	}
}

func (s *APITestSuite) TestGetQuestionsEmptyStore() {
	w, body := s.do(http.MethodGet, "/questions", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), []interface{}{}, body["questions"])
	assert.Equal(s.T(), float64(0), body["total_questions"])
}

func (s *APITestSuite) TestCreateQuestion() {
	w, body := s.do(http.MethodPost, "/questions", map[string]interface{}{
		"question":   "What is the colour of magic?",
		"answer":     "Rainbow",
		"category":   "6",
		"difficulty": 1,
	})

	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), true, body["success"])
	assert.Equal(s.T(), "What is the colour of magic?", body["question"])
	assert.Equal(s.T(), "Rainbow", body["answer"])
	assert.Equal(s.T(), float64(6), body["category"])
	assert.Equal(s.T(), float64(1), body["difficulty"])
	assert.NotZero(s.T(), body["created"])

	var count int64
	require.NoError(s.T(), s.db.Model(&model.Question{}).Where("answer = ?", "Rainbow").Count(&count).Error)
	assert.Equal(s.T(), int64(1), count)
}

func (s *APITestSuite) TestCreateQuestionMissingFields() {
	bodies := []interface{}{
		map[string]interface{}{"question": "", "answer": "Rainbow", "category": 1, "difficulty": 1},
		map[string]interface{}{"question": "Why?", "category": 1, "difficulty": 1},
		map[string]interface{}{},
		"{not json",
	}
	for _, b := range bodies {
		w, body := s.do(http.MethodPost, "/questions", b)
		s.assertError(w, body, http.StatusUnprocessableEntity)
	}

	var count int64
	require.NoError(s.T(), s.db.Model(&model.Question{}).Count(&count).Error)
	assert.Zero(s.T(), count)
}

func (s *APITestSuite) TestDeleteQuestion() {
	testutil.SeedQuestions(s.T(), s.db, 12)

	w, body := s.do(http.MethodDelete, "/questions/4", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), true, body["success"])
	assert.Equal(s.T(), float64(4), body["deleted"])
	assert.Equal(s.T(), float64(11), body["total_questions"])
	assert.Len(s.T(), body["questions"], 10)

	err := s.db.First(&model.Question{}, 4).Error
	assert.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)

	w, body = s.do(http.MethodDelete, "/questions/4", nil)
	s.assertError(w, body, http.StatusNotFound)
}

func (s *APITestSuite) TestDeleteQuestionBadID() {
	w, body := s.do(http.MethodDelete, "/questions/abc", nil)
	s.assertError(w, body, http.StatusNotFound)
}

func (s *APITestSuite) TestSearchQuestions() {
	testutil.InsertQuestion(s.T(), s.db, model.Question{Question: "What is the Title of the book?", Answer: "x", Category: 2, Difficulty: 1})
	testutil.InsertQuestion(s.T(), s.db, model.Question{Question: "Which TITLE won?", Answer: "y", Category: 2, Difficulty: 1})
	testutil.InsertQuestion(s.T(), s.db, model.Question{Question: "Unrelated", Answer: "z", Category: 2, Difficulty: 1})

	w, body := s.do(http.MethodPost, "/questions/search", map[string]string{"searchTerm": "title"})
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), float64(2), body["total_questions"])
	assert.Len(s.T(), body["questions"], 2)

	w, body = s.do(http.MethodPost, "/questions/search", map[string]string{"searchTerm": "no such thing"})
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), true, body["success"])
	assert.Equal(s.T(), float64(0), body["total_questions"])

	w, body = s.do(http.MethodPost, "/questions/search", map[string]string{"search": "title"})
	s.assertError(w, body, http.StatusUnprocessableEntity)
}

func (s *APITestSuite) TestCategoryQuestionsAndQuizExample() {
	testutil.InsertQuestion(s.T(), s.db, model.Question{ID: 5, Question: "What is H2O?", Answer: "Water", Category: 1, Difficulty: 1})

	w, body := s.do(http.MethodGet, "/categories/1/questions", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), float64(1), body["total_questions"])
	assert.Equal(s.T(), float64(1), body["current_category"])
	q := body["questions"].([]interface{})[0].(map[string]interface{})
	assert.Equal(s.T(), float64(5), q["id"])

	w, body = s.do(http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []int{5},
		"quiz_category":      map[string]interface{}{"id": 1, "type": "Science"},
	})
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), true, body["success"])
	assert.NotContains(s.T(), body, "question")

	w, body = s.do(http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []int{},
		"quiz_category":      map[string]interface{}{"id": 1, "type": "Science"},
	})
	assert.Equal(s.T(), http.StatusOK, w.Code)
	served := body["question"].(map[string]interface{})
	assert.Equal(s.T(), float64(5), served["id"])
}

func (s *APITestSuite) TestCategoryQuestionsNotFound() {
	w, body := s.do(http.MethodGet, "/categories/99/questions", nil)
	s.assertError(w, body, http.StatusNotFound)

	w, body = s.do(http.MethodGet, "/categories/abc/questions", nil)
	s.assertError(w, body, http.StatusNotFound)
}

func (s *APITestSuite) TestQuizNeverRepeats() {
	testutil.SeedQuestions(s.T(), s.db, 24)

	previous := []float64{}
	for i := 0; i < 4; i++ { // category 3 holds ids 3, 9, 15, 21
		w, body := s.do(http.MethodPost, "/quizzes", map[string]interface{}{
			"previous_questions": previous,
			"quiz_category":      map[string]interface{}{"id": "3", "type": "Geography"},
		})
		require.Equal(s.T(), http.StatusOK, w.Code)
		q := body["question"].(map[string]interface{})
		assert.Equal(s.T(), float64(3), q["category"])
		assert.NotContains(s.T(), previous, q["id"])
		previous = append(previous, q["id"].(float64))
	}

	_, body := s.do(http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": previous,
		"quiz_category":      map[string]interface{}{"id": 3},
	})
	assert.NotContains(s.T(), body, "question")
}

func (s *APITestSuite) TestQuizMalformedBody() {
	w, body := s.do(http.MethodPost, "/quizzes", "[]")
	s.assertError(w, body, http.StatusUnprocessableEntity)
}

func (s *APITestSuite) TestUnknownRouteAndMethod() {
	w, body := s.do(http.MethodGet, "/nope", nil)
	s.assertError(w, body, http.StatusNotFound)

	w, body = s.do(http.MethodPut, "/questions", map[string]string{})
	s.assertError(w, body, http.StatusMethodNotAllowed)
	assert.Equal(s.T(), "method not allowed", body["message"])
}

func (s *APITestSuite) TestCORSAllowsAnyOriginWithCredentials() {
	req := httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	assert.Equal(s.T(), "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(s.T(), "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func (s *APITestSuite) TestHealthAndMetrics() {
	w, body := s.do(http.MethodGet, "/health", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "ok", body["status"])

	w, _ = s.do(http.MethodGet, "/metrics", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Contains(s.T(), w.Body.String(), "trivia_http_requests_total")
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
