package repo

import (
	"time"

	"gorm.io/gorm"

	"terravolt-cms/internal/domain"
	"terravolt-cms/pkg/utils"
)

// SeedSuperadmin creates the bootstrap superadmin when the users table
// is empty, so a fresh deployment can reach the admin panel. No-op
// once any user exists or when no seed credentials are configured.
func SeedSuperadmin(db *gorm.DB, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleSuperadmin,
		CreatedAt:    time.Now(),
	}
	return true, db.Create(u).Error
}
