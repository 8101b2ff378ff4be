package dto

import "time"

// FieldDTO describes one input of a form, both on the way in and out.
// Options are only meaningful for select/radio/checkbox and are carried
// through untouched for the other types.
type FieldDTO struct {
	ID          string   `json:"id" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=text email textarea select radio checkbox number"`
	Label       string   `json:"label"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// FormUpsertDTO is the request body for both create and update: title,
// description and the full field list are replaced wholesale.
type FormUpsertDTO struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Fields      *[]FieldDTO `json:"fields" binding:"omitempty,dive"`
}

type FormResponseDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Fields      []FieldDTO `json:"fields"`
	CreatedAt   time.Time  `json:"createdAt"`
}
