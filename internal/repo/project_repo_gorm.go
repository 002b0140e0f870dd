package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"terravolt-cms/internal/domain"
)

type ProjectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) *ProjectRepo { return &ProjectRepo{db: db} }

func (r *ProjectRepo) Create(p *domain.Project) error {
	return r.db.Create(p).Error
}

func (r *ProjectRepo) List() ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepo) FindByID(id string) (*domain.Project, error) {
	var p domain.Project
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) Update(id string, fields map[string]any) (*domain.Project, error) {
	if _, err := r.FindByID(id); err != nil {
		return nil, err
	}
	fields["updated_at"] = time.Now()
	if err := r.db.Model(&domain.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ProjectRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
