package service

import (
	"context"
	"testing"

	"github.com/lshigami/trivia/internal/repository"
	"github.com/lshigami/trivia/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	questions QuestionService
	category  CategoryService
	quiz      *quizService
	ctx       context.Context
}

func newFixture(t *testing.T, seedQuestions int) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	testutil.SeedCategories(t, db)
	testutil.SeedQuestions(t, db, seedQuestions)

	questionRepo := repository.NewQuestionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	quiz, ok := NewQuizService(questionRepo).(*quizService)
	require.True(t, ok)

	return &fixture{
		db:        db,
		questions: NewQuestionService(questionRepo, categoryRepo),
		category:  NewCategoryService(categoryRepo),
		quiz:      quiz,
		ctx:       context.Background(),
	}
}
