package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"terravolt-cms/internal/domain"
)

type BlogRepo struct{ db *gorm.DB }

func NewBlogRepo(db *gorm.DB) *BlogRepo { return &BlogRepo{db: db} }

func (r *BlogRepo) Create(b *domain.Blog) error {
	if err := r.db.Create(b).Error; err != nil {
		if isDupKey(err) {
			return domain.NewValidationError("slug")
		}
		return err
	}
	return nil
}

func (r *BlogRepo) List() ([]domain.Blog, error) {
	var blogs []domain.Blog
	err := r.db.Order("created_at desc").Find(&blogs).Error
	return blogs, err
}

func (r *BlogRepo) FindBySlug(slug string) (*domain.Blog, error) {
	var b domain.Blog
	err := r.db.First(&b, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepo) FindByID(id string) (*domain.Blog, error) {
	var b domain.Blog
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update applies the raw partial map; unknown keys reach the store
// untouched and fail there if the column does not exist.
func (r *BlogRepo) Update(id string, fields map[string]any) (*domain.Blog, error) {
	if _, err := r.FindByID(id); err != nil {
		return nil, err
	}
	fields["updated_at"] = time.Now()
	if err := r.db.Model(&domain.Blog{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		if isDupKey(err) {
			return nil, domain.NewValidationError("slug")
		}
		return nil, err
	}
	return r.FindByID(id)
}

func (r *BlogRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Blog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
