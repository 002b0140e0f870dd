package repo

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"terravolt-cms/internal/domain"
)

// ProductRepo writes the current column layout and, when the backing
// store still carries the pre-rename schema, retries once with the
// legacy column names. Stores in mid-migration must not lose writes.
type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) (any, error) {
	err := r.db.Create(p).Error
	if err == nil {
		return p, nil
	}
	if !isSchemaMismatch(err) {
		return nil, err
	}
	legacy := p.ToLegacy()
	if err := r.db.Table(domain.Product{}.TableName()).Create(legacy).Error; err != nil {
		return nil, err
	}
	return legacy, nil
}

func (r *ProductRepo) ListPublic() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.
		Where("is_active = ?", true).
		Order("created_at asc").
		Find(&products).Error
	return products, err
}

func (r *ProductRepo) ListAdmin() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Order("created_at desc").Find(&products).Error
	return products, err
}

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Update(id string, fields map[string]any) (any, error) {
	var count int64
	if err := r.db.Table(domain.Product{}.TableName()).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrNotFound
	}
	fields["updated_at"] = time.Now()
	legacy := false
	err := r.db.Table(domain.Product{}.TableName()).Where("id = ?", id).Updates(fields).Error
	if err != nil && isSchemaMismatch(err) {
		legacy = true
		err = r.db.Table(domain.Product{}.TableName()).Where("id = ?", id).
			Updates(domain.MapToLegacyFields(fields)).Error
	}
	if err != nil {
		return nil, err
	}
	// The read-back has to match the layout the write landed in, or the
	// remapped columns scan into nothing.
	if legacy {
		return r.findLegacy(id)
	}
	return r.FindByID(id)
}

func (r *ProductRepo) findLegacy(id string) (*domain.LegacyProduct, error) {
	var p domain.LegacyProduct
	err := r.db.Table(domain.Product{}.TableName()).Where("id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Delete(id string) error {
	res := r.db.Table(domain.Product{}.TableName()).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isSchemaMismatch detects a missing-column failure across the three
// supported backends.
func isSchemaMismatch(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "has no column named") ||
		strings.Contains(msg, "unknown column") ||
		strings.Contains(msg, "does not exist")
}
