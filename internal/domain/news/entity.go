package news

import (
	"time"

	"gorm.io/gorm"

	"assovol/internal/domain/crud"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// News is a published article or announcement on the public site.
type News struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title" json:"title" validate:"required"`
	Content   string    `gorm:"column:content" json:"content" validate:"required"`
	Image     string    `gorm:"column:image" json:"image" validate:"required"`
	Date      time.Time `gorm:"column:date" json:"date" validate:"required"`
	Author    string    `gorm:"column:author" json:"author" validate:"required"`
	Category  string    `gorm:"column:category" json:"category" validate:"required,oneof=Eventi Comunicati Notizie"`
	Status    Status    `gorm:"column:status" json:"status" validate:"required,oneof=draft published"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (News) TableName() string { return "news" }

func (n *News) BeforeSave(tx *gorm.DB) error {
	if n.Status == "" {
		n.Status = StatusDraft
	}
	return crud.Validate(n)
}

func (n *News) FileRef() string       { return n.Image }
func (n *News) SetFileRef(ref string) { n.Image = ref }
