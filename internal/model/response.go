package model

import (
	"time"
)

type Response struct {
	ID             string    `gorm:"primarykey;size:36" json:"id"`
	FormID         string    `gorm:"size:36;not null;index" json:"form_id"`
	Answers        string    `gorm:"type:text;not null" json:"-"` // JSON-encoded map[fieldID]AnswerValue, (de)serialized by the service layer
	SubmitterName  *string   `json:"submitter_name,omitempty"`
	SubmitterEmail *string   `json:"submitter_email,omitempty"`
	SubmittedAt    time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

// ResponseWithFormTitle is the join shape used by the global response
// listing and the dashboard.
type ResponseWithFormTitle struct {
	Response
	FormTitle string
}
