package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a credential record. Usernames are the sole lookup key for
// authentication, so they carry a unique index.
type User struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Username  string    `gorm:"column:username;uniqueIndex;not null"`
	Password  string    `gorm:"column:password;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
