package stat

import (
	"time"

	"gorm.io/gorm"

	"assovol/internal/domain/crud"
)

// Stat is a headline figure on the public site ("150 active volunteers").
// Value is stored as a string: the admin form submits it as text and numeric
// input round-trips as its decimal form unchanged.
type Stat struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title" validate:"required"`
	Value       string    `gorm:"column:value" json:"value" validate:"required"`
	Description string    `gorm:"column:description" json:"description" validate:"required"`
	Image       string    `gorm:"column:image" json:"image,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Stat) TableName() string { return "stats" }

func (s *Stat) BeforeSave(tx *gorm.DB) error {
	return crud.Validate(s)
}

func (s *Stat) FileRef() string       { return s.Image }
func (s *Stat) SetFileRef(ref string) { s.Image = ref }
