package repository

import (
	"context"
	"strings"

	"github.com/lshigami/trivia/internal/model"
	"gorm.io/gorm"
)

// QuizFilter narrows the pool a quiz question is drawn from.
// CategoryID 0 means every category.
type QuizFilter struct {
	CategoryID uint
	ExcludeIDs []uint
}

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindPage(ctx context.Context, offset, limit int) ([]model.Question, error)
	Count(ctx context.Context) (int64, error)
	FindByCategory(ctx context.Context, categoryID uint) ([]model.Question, error)
	Search(ctx context.Context, term string) ([]model.Question, error)
	CountEligible(ctx context.Context, filter QuizFilter) (int64, error)
	FindEligibleAt(ctx context.Context, filter QuizFilter, offset int) (*model.Question, error)
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindPage(ctx context.Context, offset, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *questionRepository) FindByCategory(ctx context.Context, categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).Where("category = ?", categoryID).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search matches term as a literal, case-insensitive substring of the question text.
func (r *questionRepository) Search(ctx context.Context, term string) ([]model.Question, error) {
	var questions []model.Question
	// both sides go through the same LOWER so dialects with ASCII-only folding stay consistent
	pattern := "%" + escapeLike(term) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(question) LIKE LOWER(?) ESCAPE '!'", pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountEligible(ctx context.Context, filter QuizFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Scopes(eligible(filter)).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *questionRepository) FindEligibleAt(ctx context.Context, filter QuizFilter, offset int) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Scopes(eligible(filter)).
		Order("id ASC").
		Offset(offset).
		Take(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Delete returns gorm.ErrRecordNotFound when no row has the given id.
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func eligible(filter QuizFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.CategoryID != 0 {
			db = db.Where("category = ?", filter.CategoryID)
		}
		if len(filter.ExcludeIDs) > 0 {
			db = db.Where("id NOT IN ?", filter.ExcludeIDs)
		}
		return db
	}
}

// '!' is the escape character: mysql treats a backslash inside the ESCAPE literal specially.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
