package domain

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleSuperadmin }

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:191;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null;default:admin" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByEmail(email string) (*User, error)
	// List excludes PasswordHash from the projection.
	List() ([]User, error)
	Delete(id string) error
}
