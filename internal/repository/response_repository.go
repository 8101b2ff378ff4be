package repository

import (
	"github.com/formsmith/formsmith/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	FindByFormID(formID string) ([]model.Response, error)
	FindAllWithFormTitle() ([]model.ResponseWithFormTitle, error)
	FindRecentWithFormTitle(limit int) ([]model.ResponseWithFormTitle, error)
	Count() (int64, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByFormID(formID string) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.
		Where("form_id = ?", formID).
		Order("submitted_at DESC, id DESC").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindAllWithFormTitle() ([]model.ResponseWithFormTitle, error) {
	return r.findWithFormTitle(0)
}

func (r *responseRepository) FindRecentWithFormTitle(limit int) ([]model.ResponseWithFormTitle, error) {
	return r.findWithFormTitle(limit)
}

func (r *responseRepository) findWithFormTitle(limit int) ([]model.ResponseWithFormTitle, error) {
	var results []model.ResponseWithFormTitle
	q := r.db.Model(&model.Response{}).
		Select("responses.*, forms.title AS form_title").
		Joins("JOIN forms ON forms.id = responses.form_id").
		Order("responses.submitted_at DESC, responses.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&results).Error
	return results, err
}

func (r *responseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Response{}).Count(&count).Error
	return count, err
}
