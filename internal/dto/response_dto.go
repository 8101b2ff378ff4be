package dto

import (
	"time"

	"github.com/formsmith/formsmith/internal/model"
)

// ResponseSubmitDTO is the body of a submission. Answers keys are field ids;
// values are strings or string lists (model.AnswerValue rejects other
// shapes during binding). Keys that match no field are tolerated.
type ResponseSubmitDTO struct {
	Answers        map[string]model.AnswerValue `json:"answers"`
	SubmitterName  *string                      `json:"submitterName,omitempty"`
	SubmitterEmail *string                      `json:"submitterEmail,omitempty"`
}

type ResponseDTO struct {
	ID             string                       `json:"id"`
	FormID         string                       `json:"formId"`
	Answers        map[string]model.AnswerValue `json:"answers"`
	SubmitterName  *string                      `json:"submitterName,omitempty"`
	SubmitterEmail *string                      `json:"submitterEmail,omitempty"`
	SubmittedAt    time.Time                    `json:"submittedAt"`
}

// ResponseWithFormDTO is a ResponseDTO joined with the owning form's title,
// used by the global listing and the dashboard.
type ResponseWithFormDTO struct {
	ResponseDTO
	FormTitle string `json:"formTitle"`
}

type DashboardStatsDTO struct {
	TotalForms          int64                 `json:"totalForms"`
	TotalResponses      int64                 `json:"totalResponses"`
	AvgResponsesPerForm string                `json:"avgResponsesPerForm"`
	RecentResponses     []ResponseWithFormDTO `json:"recentResponses"`
}
