package document

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"assovol/internal/domain/crud"
	"assovol/internal/storage"
)

// Document is a downloadable file in the transparency section (statutes,
// budgets, reports). Category is free text; the admin UI offers a fixed list
// (Bilanci, Statuto, Relazioni, Regolamenti, Altri Documenti).
type Document struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title" json:"title" validate:"required"`
	Category  string    `gorm:"column:category" json:"category" validate:"required"`
	FileURL   string    `gorm:"column:file_url" json:"fileUrl" validate:"required"`
	FileSize  string    `gorm:"column:file_size" json:"fileSize" validate:"required"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Document) TableName() string { return "documents" }

func (d *Document) BeforeSave(tx *gorm.DB) error {
	return crud.Validate(d)
}

func (d *Document) FileRef() string       { return d.FileURL }
func (d *Document) SetFileRef(ref string) { d.FileURL = ref }

// setStoredSize records the uploaded file's size as the human-readable
// string the public site displays.
func setStoredSize(d *Document, stored storage.Stored) {
	d.FileSize = fmt.Sprintf("%.2f MB", float64(stored.Size)/(1024*1024))
}
