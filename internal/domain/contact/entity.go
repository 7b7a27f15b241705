package contact

import (
	"time"

	"gorm.io/gorm"

	"assovol/internal/domain/crud"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Contact is a message submitted through the public contact form and
// triaged by the admin. Status moves between values unconditionally; there
// is no gated transition.
type Contact struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name" validate:"required"`
	Email     string    `gorm:"column:email" json:"email" validate:"required,email"`
	Subject   string    `gorm:"column:subject" json:"subject" validate:"required"`
	Message   string    `gorm:"column:message" json:"message" validate:"required"`
	Status    Status    `gorm:"column:status" json:"status" validate:"required,oneof=pending read replied"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Contact) TableName() string { return "contacts" }

func (ct *Contact) BeforeSave(tx *gorm.DB) error {
	if ct.Status == "" {
		ct.Status = StatusPending
	}
	return crud.Validate(ct)
}

// Contacts store no file; the accessors exist to satisfy the generic
// controller and are inert.
func (ct *Contact) FileRef() string   { return "" }
func (ct *Contact) SetFileRef(string) {}
