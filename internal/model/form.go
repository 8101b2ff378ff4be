package model

import (
	"time"
)

// Field types a form may use. Closed set; the DTO layer rejects anything else.
const (
	FieldTypeText     = "text"
	FieldTypeEmail    = "email"
	FieldTypeTextarea = "textarea"
	FieldTypeSelect   = "select"
	FieldTypeRadio    = "radio"
	FieldTypeCheckbox = "checkbox"
	FieldTypeNumber   = "number"
)

// Field is one typed input definition within a form. Fields are owned by
// value: the ordered list is JSON-encoded into the form's fields column and
// never addressable on its own.
type Field struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"` // select/radio/checkbox only
}

type Form struct {
	ID          string     `gorm:"primarykey;size:36" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Fields      string     `gorm:"type:text;not null" json:"-"` // JSON-encoded []Field, (de)serialized by the service layer
	Responses   []Response `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
