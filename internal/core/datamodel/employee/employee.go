package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the persistence shape of an employee record. All three mutable
// fields are nullable: an update that omits a field writes NULL, it never
// merges.
type Employee struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Name      *string   `gorm:"column:name"`
	Position  *string   `gorm:"column:position"`
	Salary    *float64  `gorm:"column:salary"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// BeforeCreate assigns the store-generated identifier. Identifiers are opaque
// and immutable once assigned.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
