package project

import (
	"time"

	"gorm.io/gorm"

	"assovol/internal/domain/crud"
)

// Project is an initiative of the association shown on the public site
// (transport services, training courses, emergency support).
type Project struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title" validate:"required"`
	Description string    `gorm:"column:description" json:"description" validate:"required"`
	StartDate   time.Time `gorm:"column:start_date" json:"startDate" validate:"required"`
	EndDate     time.Time `gorm:"column:end_date" json:"endDate" validate:"required"`
	Category    string    `gorm:"column:category" json:"category" validate:"required,oneof=social education health other"`
	Image       string    `gorm:"column:image" json:"image" validate:"required"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeSave(tx *gorm.DB) error {
	return crud.Validate(p)
}

func (p *Project) FileRef() string       { return p.Image }
func (p *Project) SetFileRef(ref string) { p.Image = ref }
