package repository

import (
	"github.com/formsmith/formsmith/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id string) (*model.Form, error)
	FindAll() ([]model.Form, error)
	// Update replaces title, description and fields wholesale and reports
	// how many rows matched so the service can distinguish a missing form.
	Update(id string, title, description, fields string) (int64, error)
	// Delete removes the form and all of its responses in one transaction
	// and reports how many form rows matched.
	Delete(id string) (int64, error)
	Count() (int64, error)
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id string) (*model.Form, error) {
	var form model.Form
	err := r.db.First(&form, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindAll() ([]model.Form, error) {
	var forms []model.Form
	// ids are time-ordered, so the id tiebreak keeps equal timestamps in
	// insertion order.
	err := r.db.Order("created_at DESC, id DESC").Find(&forms).Error
	return forms, err
}

func (r *formRepository) Update(id string, title, description, fields string) (int64, error) {
	res := r.db.Model(&model.Form{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
		"fields":      fields,
	})
	return res.RowsAffected, res.Error
}

func (r *formRepository) Delete(id string) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Form{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *formRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Form{}).Count(&count).Error
	return count, err
}
