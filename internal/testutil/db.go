package testutil

import (
	"strconv"
	"testing"

	"github.com/lshigami/trivia/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns a migrated, empty in-memory sqlite database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every new connection would get its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Question{}))
	return db
}

// Categories mirrors the stock trivia categories.
var Categories = []model.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

func SeedCategories(t testing.TB, db *gorm.DB) {
	t.Helper()
	cats := make([]model.Category, len(Categories))
	copy(cats, Categories)
	require.NoError(t, db.Create(&cats).Error)
}

// SeedQuestions inserts n questions numbered 1..n, spread round-robin over categories 1..6.
func SeedQuestions(t testing.TB, db *gorm.DB, n int) []model.Question {
	t.Helper()
	questions := make([]model.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, model.Question{
			ID:         uint(i),
			Question:   "Question number " + strconv.Itoa(i),
			Answer:     "Answer " + strconv.Itoa(i),
			Category:   uint((i-1)%6 + 1),
			Difficulty: (i-1)%5 + 1,
		})
	}
	if n > 0 {
		require.NoError(t, db.Create(&questions).Error)
	}
	return questions
}

func InsertQuestion(t testing.TB, db *gorm.DB, q model.Question) model.Question {
	t.Helper()
	require.NoError(t, db.Create(&q).Error)
	return q
}
